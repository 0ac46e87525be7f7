package x

import (
	"context"
	"testing"

	"github.com/iov-one/keep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedAuth authenticates a static list of conditions.
type fixedAuth struct {
	perms []keep.Condition
}

var _ Authenticator = fixedAuth{}

func (a fixedAuth) GetConditions(keep.Context) []keep.Condition {
	return a.perms
}

func (a fixedAuth) HasAddress(ctx keep.Context, addr keep.Address) bool {
	for _, p := range a.perms {
		if addr.Equals(p.Address()) {
			return true
		}
	}
	return false
}

func TestChainAuth(t *testing.T) {
	a := keep.NewCondition("sig", "ed25519", []byte("alice"))
	b := keep.NewCondition("sig", "ed25519", []byte("bob"))
	c := keep.NewCondition("sig", "ed25519", []byte("carol"))

	auth := ChainAuth(
		fixedAuth{perms: []keep.Condition{a}},
		fixedAuth{},
		fixedAuth{perms: []keep.Condition{b}},
	)

	ctx := context.Background()
	conds := auth.GetConditions(ctx)
	require.Len(t, conds, 2)
	assert.True(t, conds[0].Equals(a))
	assert.True(t, conds[1].Equals(b))

	assert.True(t, auth.HasAddress(ctx, a.Address()))
	assert.True(t, auth.HasAddress(ctx, b.Address()))
	assert.False(t, auth.HasAddress(ctx, c.Address()))
}

func TestMainSigner(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, MainSigner(ctx, fixedAuth{}))

	a := keep.NewCondition("sig", "ed25519", []byte("alice"))
	b := keep.NewCondition("sig", "ed25519", []byte("bob"))
	signer := MainSigner(ctx, fixedAuth{perms: []keep.Condition{a, b}})
	assert.True(t, signer.Equals(a))
}

func TestHasAllAddresses(t *testing.T) {
	a := keep.NewCondition("sig", "ed25519", []byte("alice"))
	b := keep.NewCondition("sig", "ed25519", []byte("bob"))
	auth := fixedAuth{perms: []keep.Condition{a, b}}
	ctx := context.Background()

	assert.True(t, HasAllAddresses(ctx, auth, nil))
	assert.True(t, HasAllAddresses(ctx, auth, []keep.Address{a.Address(), b.Address()}))

	c := keep.NewCondition("sig", "ed25519", []byte("carol"))
	assert.False(t, HasAllAddresses(ctx, auth, []keep.Address{a.Address(), c.Address()}))
}

package keep

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHeight(t *testing.T) {
	bg := context.Background()

	_, ok := GetHeight(bg)
	assert.False(t, ok)

	ctx := WithHeight(bg, 123)
	height, ok := GetHeight(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(123), height)

	// height is set once in the lifetime of a context
	assert.Panics(t, func() { WithHeight(ctx, 456) })
}

func TestContextChainID(t *testing.T) {
	bg := context.Background()

	assert.Panics(t, func() { GetChainID(bg) })

	ctx := WithChainID(bg, "my-chain-22")
	assert.Equal(t, "my-chain-22", GetChainID(ctx))

	assert.Panics(t, func() { WithChainID(ctx, "my-chain-33") })
	assert.Panics(t, func() { WithChainID(bg, "bad chain id!") })
}

func TestChainIDFormat(t *testing.T) {
	cases := map[string]bool{
		"chain-1":               true,
		"my_chain_9":            true,
		"foobarbazfoobarbazfoo": false, // too long
		"ab":                    false, // too short
		"no spaces":             false,
	}
	for chainID, valid := range cases {
		assert.Equal(t, valid, IsValidChainID(chainID), chainID)
	}
}

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	ctx := WithLogInfo(bg, "module", "test")
	assert.NotEqual(t, DefaultLogger, GetLogger(ctx))
}

package app

import (
	"context"
	"testing"

	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	registered := &keeptest.Handler{}
	r.Handle(&keeptest.Msg{RoutePath: "test/good"}, registered)

	ctx := context.Background()

	tx := &keeptest.Tx{Msg: &keeptest.Msg{RoutePath: "test/good"}}
	_, err := r.Check(ctx, nil, tx)
	require.NoError(t, err)
	_, err = r.Deliver(ctx, nil, tx)
	require.NoError(t, err)
	assert.Equal(t, 2, registered.CallCount())

	// unknown path returns not found
	tx = &keeptest.Tx{Msg: &keeptest.Msg{RoutePath: "test/missing"}}
	_, err = r.Check(ctx, nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, nil, tx)
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, registered.CallCount())
}

func TestRouterBrokenTx(t *testing.T) {
	r := NewRouter()
	broken := errors.Wrap(errors.ErrInput, "broken tx")
	tx := &keeptest.Tx{Err: broken}

	_, err := r.Check(context.Background(), nil, tx)
	assert.True(t, errors.ErrInput.Is(err))
	_, err = r.Deliver(context.Background(), nil, tx)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestRouterHandlePanics(t *testing.T) {
	assert.Panics(t, func() {
		r := NewRouter()
		r.Handle(&keeptest.Msg{RoutePath: "bad path!"}, &keeptest.Handler{})
	})

	assert.Panics(t, func() {
		r := NewRouter()
		r.Handle(&keeptest.Msg{RoutePath: "test/dup"}, &keeptest.Handler{})
		r.Handle(&keeptest.Msg{RoutePath: "test/dup"}, &keeptest.Handler{})
	})
}

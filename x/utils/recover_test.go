package utils

import (
	"context"
	"testing"

	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panicHandler struct{}

var _ keep.Handler = panicHandler{}

func (panicHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	panic("deliver panic")
}

func TestRecoveryTurnsPanicIntoError(t *testing.T) {
	stack := keeptest.Decorate(panicHandler{}, NewRecovery())
	ctx := context.Background()

	_, err := stack.Check(ctx, nil, &keeptest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "check panic")

	_, err = stack.Deliver(ctx, nil, &keeptest.Tx{})
	assert.True(t, errors.ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "deliver panic")
}

func TestRecoveryPassesResultsThrough(t *testing.T) {
	h := &keeptest.Handler{
		DeliverResult: keep.DeliverResult{Log: "ok"},
	}
	stack := keeptest.Decorate(h, NewRecovery())

	res, err := stack.Deliver(context.Background(), nil, &keeptest.Tx{})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Log)
	assert.Equal(t, 1, h.DeliverCallCount())
}

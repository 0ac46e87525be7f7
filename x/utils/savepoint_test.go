package utils

import (
	"context"
	"testing"

	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/keeptest"
	"github.com/iov-one/keep/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHandler writes the key, value pair and returns the error (may be nil)
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ keep.Handler = writeHandler{}

func (h writeHandler) Check(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &keep.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx keep.Context, db keep.KVStore, tx keep.Tx) (*keep.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &keep.DeliverResult{}, h.err
}

func TestSavepointCommitsOnSuccess(t *testing.T) {
	h := writeHandler{key: []byte("k"), value: []byte("v")}
	stack := keeptest.Decorate(h, NewSavepoint().OnCheck().OnDeliver())
	ctx := context.Background()

	db := store.MemStore()
	_, err := stack.Check(ctx, db, &keeptest.Tx{})
	require.NoError(t, err)
	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	db = store.MemStore()
	_, err = stack.Deliver(ctx, db, &keeptest.Tx{})
	require.NoError(t, err)
	val, err = db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}

func TestSavepointDiscardsOnError(t *testing.T) {
	boom := errors.Wrap(errors.ErrHuman, "boom")
	h := writeHandler{key: []byte("k"), value: []byte("v"), err: boom}
	stack := keeptest.Decorate(h, NewSavepoint().OnCheck().OnDeliver())
	ctx := context.Background()

	db := store.MemStore()
	_, err := stack.Check(ctx, db, &keeptest.Tx{})
	assert.True(t, errors.ErrHuman.Is(err))
	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, val)

	db = store.MemStore()
	_, err = stack.Deliver(ctx, db, &keeptest.Tx{})
	assert.True(t, errors.ErrHuman.Is(err))
	val, err = db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestSavepointInactiveWritesThrough(t *testing.T) {
	boom := errors.Wrap(errors.ErrHuman, "boom")
	h := writeHandler{key: []byte("k"), value: []byte("v"), err: boom}
	// no OnCheck/OnDeliver, so no isolation happens
	stack := keeptest.Decorate(h, NewSavepoint())
	ctx := context.Background()

	db := store.MemStore()
	_, err := stack.Deliver(ctx, db, &keeptest.Tx{})
	assert.True(t, errors.ErrHuman.Is(err))
	val, err := db.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)
}

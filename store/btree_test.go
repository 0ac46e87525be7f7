package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBTreeCacheGetSet(t *testing.T) {
	base := MemStore()

	k, v := []byte("french"), []byte("fry")

	// nothing to start
	has, err := base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)

	// set and get it
	require.NoError(t, base.Set(k, v))
	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// delete and gone
	require.NoError(t, base.Delete(k))
	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBTreeCacheWrapWriteAndDiscard(t *testing.T) {
	base := MemStore()
	k, v := []byte("owner"), []byte("account")
	k2, v2 := []byte("other"), []byte("record")
	require.NoError(t, base.Set(k, v))

	// writes in a discarded wrap never touch the parent
	cache := base.CacheWrap()
	require.NoError(t, cache.Set(k2, v2))
	require.NoError(t, cache.Delete(k))
	cache.Discard()

	got, err := base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	has, err := base.Has(k2)
	require.NoError(t, err)
	assert.False(t, has)

	// writes in a written wrap all land in the parent
	cache = base.CacheWrap()
	require.NoError(t, cache.Set(k2, v2))
	require.NoError(t, cache.Delete(k))
	require.NoError(t, cache.Write())

	has, err = base.Has(k)
	require.NoError(t, err)
	assert.False(t, has)
	got, err = base.Get(k2)
	require.NoError(t, err)
	assert.Equal(t, v2, got)
}

func TestBTreeCacheWrapReadThrough(t *testing.T) {
	base := MemStore()
	k, v := []byte("pre"), []byte("existing")
	require.NoError(t, base.Set(k, v))

	cache := base.CacheWrap()
	got, err := cache.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// cache delete shadows the parent value until discarded
	require.NoError(t, cache.Delete(k))
	got, err = cache.Get(k)
	require.NoError(t, err)
	assert.Nil(t, got)
	cache.Discard()

	got, err = base.Get(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestBTreeCacheIteratorCombines(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte{1}))
	require.NoError(t, base.Set([]byte("c"), []byte{3}))
	require.NoError(t, base.Set([]byte("d"), []byte{4}))

	cache := base.CacheWrap()
	// overwrite, insert and delete in the cache layer
	require.NoError(t, cache.Set([]byte("b"), []byte{2}))
	require.NoError(t, cache.Set([]byte("c"), []byte{33}))
	require.NoError(t, cache.Delete([]byte("d")))

	iter, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var keys []string
	var vals [][]byte
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
		vals = append(vals, iter.Value())
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, [][]byte{{1}, {2}, {33}}, vals)
}

func TestBTreeCacheReverseIterator(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("a"), []byte{1}))
	require.NoError(t, base.Set([]byte("c"), []byte{3}))

	cache := base.CacheWrap()
	require.NoError(t, cache.Set([]byte("b"), []byte{2}))

	iter, err := cache.ReverseIterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"c", "b", "a"}, keys)
}

func TestBTreeCacheIteratorRange(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("custody:a"), []byte{1}))
	require.NoError(t, base.Set([]byte("custody:b"), []byte{2}))
	require.NoError(t, base.Set([]byte("other:a"), []byte{9}))

	iter, err := base.Iterator([]byte("custody:"), []byte("custody;"))
	require.NoError(t, err)
	defer iter.Close()

	var keys []string
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"custody:a", "custody:b"}, keys)
}

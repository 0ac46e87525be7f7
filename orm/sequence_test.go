package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/keep/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("custody", "accounts")

	// fresh sequence starts at zero
	latest, _, err := seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)

	for i := int64(1); i <= 5; i++ {
		val, err := seq.NextInt(db)
		require.NoError(t, err)
		assert.Equal(t, i, val)
	}

	latest, _, err = seq.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5), latest)
}

func TestSequenceValOrdering(t *testing.T) {
	db := store.MemStore()
	seq := NewSequence("custody", "ids")

	prev, err := seq.NextVal(db)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		cur, err := seq.NextVal(db)
		require.NoError(t, err)
		assert.True(t, bytes.Compare(prev, cur) < 0)
		prev = cur
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	db := store.MemStore()
	one := NewSequence("custody", "accounts")
	two := NewSequence("custody", "other")

	_, err := one.NextInt(db)
	require.NoError(t, err)
	latest, _, err := two.Latest(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)
}

package orm

import (
	"testing"

	"github.com/iov-one/keep/errors"
	"github.com/iov-one/keep/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifespanExtend(t *testing.T) {
	db := store.MemStore()
	life := NewLifespan("custody")

	// no guarantee until first extension
	until, err := life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), until)

	// first extension always raises the window
	require.NoError(t, life.Extend(db, 100, 5000, 5000))
	until, err = life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5100), until)

	// the window is still comfortable, nothing changes
	require.NoError(t, life.Extend(db, 101, 4000, 5000))
	until, err = life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(5100), until)

	// close to expiration the window is raised again
	require.NoError(t, life.Extend(db, 1200, 4000, 5000))
	until, err = life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(6200), until)
}

func TestLifespanNeverShortens(t *testing.T) {
	db := store.MemStore()
	life := NewLifespan("custody")

	require.NoError(t, life.Extend(db, 100, 0, 9000))
	// a lower target with a satisfied threshold leaves the window alone
	require.NoError(t, life.Extend(db, 100, 1000, 1000))

	until, err := life.LiveUntil(db)
	require.NoError(t, err)
	assert.Equal(t, int64(9100), until)
}

func TestLifespanRejectsNegativeInput(t *testing.T) {
	db := store.MemStore()
	life := NewLifespan("custody")
	err := life.Extend(db, -1, 5000, 5000)
	assert.True(t, errors.ErrInput.Is(err))
}

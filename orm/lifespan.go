package orm

import (
	"github.com/iov-one/keep"
	"github.com/iov-one/keep/errors"
)

// Lifespan maintains a retention window for a bucket keyspace. The window is
// expressed as the block height until which the stored records are guaranteed
// to be kept around. Storage engines with an expiration policy may prune
// everything that lived past its window.
//
// Extend never shortens a window, it only raises the guarantee when it runs
// low. This mirrors a rent/TTL model: every successful mutation refreshes the
// records it touched.
type Lifespan struct {
	id []byte
}

// NewLifespan returns a retention window tracker for a bucket. It is using
// following pattern to construct a key:
//    _l.<bucket>
func NewLifespan(bucket string) Lifespan {
	id := "_l." + bucket
	return Lifespan{
		id: []byte(id),
	}
}

// Extend refreshes the retention window. When the current window ends less
// than threshold blocks past now, it is raised to now+extendTo. Otherwise
// this is a noop.
func (l *Lifespan) Extend(db keep.KVStore, now, threshold, extendTo int64) error {
	if now < 0 || threshold < 0 || extendTo < 0 {
		return errors.Wrap(errors.ErrInput, "negative lifespan extension")
	}
	raw, err := db.Get(l.id)
	if err != nil {
		return err
	}
	liveUntil := DecodeSequence(raw)
	if liveUntil-now >= threshold {
		return nil
	}
	return db.Set(l.id, EncodeSequence(now+extendTo))
}

// LiveUntil returns the height until which this keyspace is guaranteed to be
// retained. Zero means no guarantee was ever given.
func (l *Lifespan) LiveUntil(db keep.ReadOnlyKVStore) (int64, error) {
	raw, err := db.Get(l.id)
	if err != nil {
		return 0, err
	}
	return DecodeSequence(raw), nil
}

//nolint
package store

import "github.com/iov-one/keep"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = keep.ReadOnlyKVStore
type KVStore = keep.KVStore
type SetDeleter = keep.SetDeleter
type Batch = keep.Batch
type Iterator = keep.Iterator
type CacheableKVStore = keep.CacheableKVStore
type KVCacheWrap = keep.KVCacheWrap
type Model = keep.Model

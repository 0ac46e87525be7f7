package store

import (
	"bytes"

	"github.com/google/btree"
)

///////////////////////////////////////////////////////
// From btree items to Iterator

// snapshotIter holds a copy of all items the btree contained in the
// requested range at creation time. The cache btrees are small (one
// transaction worth of writes), so materializing the range is cheaper
// and safer than streaming it while the tree may be modified.
type snapshotIter struct {
	items   []btree.Item
	idx     int
	reverse bool
}

// ascendBtree snapshots the [start, end) range of the cache in
// ascending order.
func ascendBtree(bt *btree.BTree, start, end []byte) *snapshotIter {
	iter := new(snapshotIter)
	insert := func(item btree.Item) bool {
		iter.items = append(iter.items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Ascend(insert)
	case start == nil:
		bt.AscendLessThan(bkey{end}, insert)
	case end == nil:
		bt.AscendGreaterOrEqual(bkey{start}, insert)
	default:
		bt.AscendRange(bkey{start}, bkey{end}, insert)
	}
	return iter
}

// descendBtree snapshots the [start, end) range of the cache in
// descending order.
func descendBtree(bt *btree.BTree, start, end []byte) *snapshotIter {
	iter := &snapshotIter{reverse: true}
	insert := func(item btree.Item) bool {
		iter.items = append(iter.items, item)
		return true
	}

	switch {
	case start == nil && end == nil:
		bt.Descend(insert)
	case start == nil:
		bt.DescendLessOrEqual(bkeyLess{end}, insert)
	case end == nil:
		bt.DescendGreaterThan(bkeyLess{start}, insert)
	default:
		bt.DescendRange(bkeyLess{end}, bkeyLess{start}, insert)
	}
	return iter
}

// wrap combines this snapshot with the iterator of the backing store,
// resolving overwrites and deletes recorded in the cache.
func (s *snapshotIter) wrap(parent Iterator) (Iterator, error) {
	iter := &itemIter{
		cache:  s,
		parent: parent,
	}
	if err := iter.skipAllDeleted(); err != nil {
		iter.Close()
		return nil, err
	}
	return iter, nil
}

func (s *snapshotIter) valid() bool {
	return s.idx < len(s.items)
}

func (s *snapshotIter) next() {
	s.idx++
}

// get requires this is valid, gets what we are pointing at
func (s *snapshotIter) get() keyer {
	return s.items[s.idx].(keyer)
}

// source marks where the current item comes from
type source int32

const (
	us source = iota
	parent
	both
	none
)

type itemIter struct {
	cache *snapshotIter
	// if we are iterating in a cache-wrap (and who isn't),
	// we need to combine this iterator with the parent
	parent Iterator
}

//------- public facing interface ------
var _ Iterator = (*itemIter)(nil)

// Valid implements Iterator and returns true iff it can be read
func (i *itemIter) Valid() bool {
	return i.cache.valid() || i.parentValid()
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
//
// If Valid returns false, this method will panic.
func (i *itemIter) Next() error {
	// advance either us, parent, or both
	switch i.firstKey() {
	case us:
		i.cache.next()
	case both:
		i.cache.next()
		fallthrough
	case parent:
		if err := i.parent.Next(); err != nil {
			return err
		}
	default:
		panic("Advanced past the end!")
	}

	// keep advancing over all deleted entries
	return i.skipAllDeleted()
}

// Key returns the key of the cursor.
func (i *itemIter) Key() (key []byte) {
	switch i.firstKey() {
	case us, both:
		return i.cache.get().Key()
	case parent:
		return i.parent.Key()
	default: // none
		panic("Advanced past the end!")
	}
}

// Value returns the value of the cursor.
func (i *itemIter) Value() (value []byte) {
	switch i.firstKey() {
	case us, both:
		return i.cache.get().(setItem).value
	case parent:
		return i.parent.Value()
	default: // none
		panic("Advanced past the end!")
	}
}

// Close releases the Iterator.
func (i *itemIter) Close() {
	if i.parent != nil {
		i.parent.Close()
	}
	i.cache.items = nil
}

// skipAllDeleted loops and skips any number of deleted items
func (i *itemIter) skipAllDeleted() error {
	more := true
	for more {
		var err error
		more, err = i.skipDeleted()
		if err != nil {
			return err
		}
	}
	return nil
}

// skipDeleted jumps over all elements we can safely fast forward
// return true if skipped, so we can skip again
func (i *itemIter) skipDeleted() (bool, error) {
	src := i.firstKey()
	if src == us || src == both {
		// if our next is deleted, advance...
		if _, ok := i.cache.get().(deletedItem); ok {
			i.cache.next()
			// if parent had the same key, advance parent as well
			if src == both {
				if err := i.parent.Next(); err != nil {
					return false, err
				}
			}
			return true, nil
		}
	}
	return false, nil
}

// firstKey selects the iterator with the lowest key if any
func (i *itemIter) firstKey() source {
	// if only one or none is valid, it is clear which to use
	if !i.parentValid() {
		if !i.cache.valid() {
			return none
		}
		return us
	} else if !i.cache.valid() {
		return parent
	}

	// both are valid... compare keys....
	parKey := i.parent.Key()
	usKey := i.cache.get().Key()

	cmp := bytes.Compare(parKey, usKey)
	if i.cache.reverse {
		// descending order, the higher key goes first
		cmp = -cmp
	}
	switch {
	case cmp < 0:
		return parent
	case cmp > 0:
		return us
	default:
		return both
	}
}

// makes sure the parent is non-nil before checking if it is valid
func (i *itemIter) parentValid() bool {
	return (i.parent != nil) && i.parent.Valid()
}

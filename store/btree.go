package store

import (
	"bytes"

	"github.com/google/btree"
)

const (
	// DefaultFreeListSize is the size we hold for free nodes in the btree
	DefaultFreeListSize = btree.DefaultFreeListSize
)

// BTreeCacheable adds a simple btree-based CacheWrap
// strategy to a KVStore
type BTreeCacheable struct {
	KVStore
}

var _ CacheableKVStore = BTreeCacheable{}

// CacheWrap returns a BTreeCacheWrap that can be later
// written to this store, or rolled back
func (b BTreeCacheable) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b.KVStore, batchFor(b.KVStore), nil)
}

// MemStore returns a simple implementation useful for tests.
// There is no persistence here....
func MemStore() CacheableKVStore {
	e := EmptyKVStore{}
	return NewBTreeCacheWrap(e, e.NewBatch(), nil)
}

func batchFor(kv KVStore) Batch {
	type batcher interface {
		NewBatch() Batch
	}
	if b, ok := kv.(batcher); ok {
		return b.NewBatch()
	}
	return NewNonAtomicBatch(kv)
}

///////////////////////////////////////////////
// Actual CacheWrap implementation

// BTreeCacheWrap places a btree cache over a KVStore
type BTreeCacheWrap struct {
	bt    *btree.BTree
	free  *btree.FreeList
	back  ReadOnlyKVStore
	batch Batch
}

var _ KVCacheWrap = BTreeCacheWrap{}

// NewBTreeCacheWrap initializes a BTree to cache around this
// kv store. Use ReadOnlyKVStore to emphasize that all writes
// must go through the Batch.
//
// free may be nil, but set to an existing list to reuse it
// for memory savings
func NewBTreeCacheWrap(kv ReadOnlyKVStore, batch Batch, free *btree.FreeList) BTreeCacheWrap {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return BTreeCacheWrap{
		bt:    btree.NewWithFreeList(2, free),
		free:  free,
		back:  kv,
		batch: batch,
	}
}

// CacheWrap layers another BTree on top of this one.
// Don't change horses in mid-stream....
//
// Uses NonAtomicBatch as it is only backed by another in-memory batch
func (b BTreeCacheWrap) CacheWrap() KVCacheWrap {
	return NewBTreeCacheWrap(b, b.NewBatch(), b.free)
}

// NewBatch returns a non-atomic batch that eventually may write to
// our cachewrap
func (b BTreeCacheWrap) NewBatch() Batch {
	return NewNonAtomicBatch(b)
}

// Write syncs with the underlying store.
// And then cleans up
func (b BTreeCacheWrap) Write() error {
	err := b.batch.Write()
	b.Discard()
	return err
}

// Discard invalidates this CacheWrap and releases all data
func (b BTreeCacheWrap) Discard() {
	// clean up the btree -> freelist
	for stop := false; !stop; {
		rem := b.bt.DeleteMin()
		stop = (rem == nil)
	}
}

// Set writes to the BTree and to the batch
func (b BTreeCacheWrap) Set(key, value []byte) error {
	b.bt.ReplaceOrInsert(newSetItem(key, value))
	return b.batch.Set(key, value)
}

// Delete deletes from the BTree and to the batch
func (b BTreeCacheWrap) Delete(key []byte) error {
	b.bt.ReplaceOrInsert(newDeletedItem(key))
	return b.batch.Delete(key)
}

// Get reads from the BTree if there, else backing store
func (b BTreeCacheWrap) Get(key []byte) ([]byte, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch t := res.(type) {
		case setItem:
			return t.value, nil
		case deletedItem:
			return nil, nil
		}
	}
	return b.back.Get(key)
}

// Has reads from the BTree if there, else backing store
func (b BTreeCacheWrap) Has(key []byte) (bool, error) {
	res := b.bt.Get(bkey{key})
	if res != nil {
		switch res.(type) {
		case setItem:
			return true, nil
		case deletedItem:
			return false, nil
		}
	}
	return b.back.Has(key)
}

// Iterator over a domain of keys in ascending order.
// Combines the uncommitted cache state with the backing store.
func (b BTreeCacheWrap) Iterator(start, end []byte) (Iterator, error) {
	models, err := b.rangeQuery(start, end)
	if err != nil {
		return nil, err
	}
	return NewSliceIterator(models), nil
}

// ReverseIterator over a domain of keys in descending order.
func (b BTreeCacheWrap) ReverseIterator(start, end []byte) (Iterator, error) {
	models, err := b.rangeQuery(start, end)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}
	return NewSliceIterator(models), nil
}

// rangeQuery materializes the range [start, end) as a sorted slice,
// overlaying uncommitted writes and deletes on the backing data.
func (b BTreeCacheWrap) rangeQuery(start, end []byte) ([]Model, error) {
	itr, err := b.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer itr.Close()

	merged := make(map[string][]byte)
	var order []string
	for ; itr.Valid(); itr.Next() {
		k := string(itr.Key())
		merged[k] = append([]byte(nil), itr.Value()...)
		order = append(order, k)
	}

	visit := func(i btree.Item) bool {
		switch t := i.(type) {
		case setItem:
			k := string(t.key)
			if _, ok := merged[k]; !ok {
				order = insertSorted(order, k)
			}
			merged[k] = t.value
		case deletedItem:
			k := string(t.key)
			if _, ok := merged[k]; ok {
				delete(merged, k)
				order = removeSorted(order, k)
			}
		}
		return true
	}
	if start == nil && end == nil {
		b.bt.Ascend(visit)
	} else if start == nil {
		b.bt.AscendLessThan(bkey{end}, visit)
	} else if end == nil {
		b.bt.AscendGreaterOrEqual(bkey{start}, visit)
	} else {
		b.bt.AscendRange(bkey{start}, bkey{end}, visit)
	}

	models := make([]Model, 0, len(order))
	for _, k := range order {
		if v, ok := merged[k]; ok {
			models = append(models, Model{Key: []byte(k), Value: v})
		}
	}
	return models, nil
}

func insertSorted(keys []string, k string) []string {
	for i, have := range keys {
		if k < have {
			keys = append(keys, "")
			copy(keys[i+1:], keys[i:])
			keys[i] = k
			return keys
		}
	}
	return append(keys, k)
}

func removeSorted(keys []string, k string) []string {
	for i, have := range keys {
		if have == k {
			return append(keys[:i], keys[i+1:]...)
		}
	}
	return keys
}

/////////////////////////////////////////////////////////
// Items to write to btree

// we enforce all data in our btree implements keyer so we can compare nicely
type keyer interface {
	Key() []byte
}

// bkey implements keyer and is used for lookups
type bkey struct {
	key []byte
}

func (b bkey) Key() []byte {
	return b.key
}

func (b bkey) Less(than btree.Item) bool {
	return bytes.Compare(b.key, than.(keyer).Key()) < 0
}

// setItem is a key-value pair that was written in this cache layer
type setItem struct {
	bkey
	value []byte
}

func newSetItem(key, value []byte) setItem {
	return setItem{
		bkey:  bkey{key},
		value: value,
	}
}

// deletedItem marks a key as removed in this cache layer
type deletedItem struct {
	bkey
}

func newDeletedItem(key []byte) deletedItem {
	return deletedItem{bkey{key}}
}

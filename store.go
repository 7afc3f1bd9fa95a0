package msig

//////////////////////////////////////////////////////////
// Defines all public interfaces for interacting with stores
//
// KVStore/Iterator are the basic objects to use in all code

// ReadOnlyKVStore is a simple interface to query data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is
	// exclusive. Start must be less than end, or the Iterator is
	// invalid.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order. End is
	// exclusive. Start must be greater than end, or the Iterator is
	// invalid.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// KVStore is a simple interface to get/set data
//
// For simplicity, we require all backing stores to implement this
// interface. They *may* implement other methods as well, but
// at least these are required.
type KVStore interface {
	ReadOnlyKVStore

	// Set sets the key. Panics on nil key.
	Set(key, value []byte) error

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte) error
}

// Iterator allows us to access a set of items within a range of keys.
// These may all be preloaded, or loaded on demand.
//
//   Usage:
//
//   var itr Iterator = ...
//   defer itr.Close()
//
//   for ; itr.Valid(); itr.Next() {
//     k, v := itr.Key(), itr.Value()
//     // ...
//   }
type Iterator interface {
	// Valid returns whether the current position is valid.
	// Once invalid, an Iterator is forever invalid.
	Valid() bool

	// Next moves the iterator to the next sequential key in the
	// database, as defined by order of iteration.
	//
	// If Valid returns false, this method will panic.
	Next()

	// Key returns the key of the cursor.
	// If Valid returns false, this method will panic.
	Key() []byte

	// Value returns the value of the cursor.
	// If Valid returns false, this method will panic.
	Value() []byte

	// Close releases the Iterator.
	Close()
}

///////////////////////////////////////////////////////////
// Caching conditional execution
//
// These extend KVStore to allow grouping temporary writes
// which may be committed/discarded together.

// CacheableKVStore is a KVStore that supports CacheWrapping
//
// CacheWrap() should not return a Committer, since Commit() on
// cache-wraps make no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap allows us to maintain a scratch-pad of uncommitted writes
// that can be flushed to the parent in one atomic unit, or thrown away.
type KVCacheWrap interface {
	// CacheableKVStore allows another level of caching
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data
	Discard()
}

// Batch can write multiple operations to an underlying store and flush
// them all together.
type Batch interface {
	Set(key, value []byte) error
	Delete(key []byte) error
	Write() error
}

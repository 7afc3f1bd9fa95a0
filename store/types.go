package store

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Aliased here so this package and its callers can name the storage
// contracts without importing the root package everywhere.
type (
	ReadOnlyKVStore  = msig.ReadOnlyKVStore
	KVStore          = msig.KVStore
	CacheableKVStore = msig.CacheableKVStore
	KVCacheWrap      = msig.KVCacheWrap
	Iterator         = msig.Iterator
	Batch            = msig.Batch
)

// Model groups a key-value pair, used when materializing range queries.
type Model struct {
	Key   []byte
	Value []byte
}

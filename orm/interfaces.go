package orm

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Cloneable is an object that can make a copy of itself,
// so we can keep a prototype around without mutating it.
type Cloneable interface {
	Clone() Object
}

// CloneableData is the value stored inside an Object. It must be
// validatable, serializable, and copyable.
type CloneableData interface {
	msig.Persistent
	Validate() error
	Copy() CloneableData
}

// Object is what is stored in a bucket: a key plus a value that
// knows how to validate and serialize itself.
type Object interface {
	Cloneable
	Validate() error

	Key() []byte
	Value() CloneableData
	SetKey([]byte)
}

// Reader defines an interface that allows reading objects from the db
type Reader interface {
	Get(db msig.ReadOnlyKVStore, key []byte) (Object, error)
}

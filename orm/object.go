package orm

import (
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// SimpleObj wraps a key and a value together. It can be used as a
// template object in a bucket, cloned for each read.
type SimpleObj struct {
	key   []byte
	value CloneableData
}

var _ Object = (*SimpleObj)(nil)

// NewSimpleObj constructs an object from a key and value.
func NewSimpleObj(key []byte, value CloneableData) *SimpleObj {
	return &SimpleObj{
		key:   key,
		value: value,
	}
}

// Value gets the value stored in the object
func (o SimpleObj) Value() CloneableData {
	return o.value
}

// Key returns the key to store the object under
func (o SimpleObj) Key() []byte {
	return o.key
}

// SetKey may be used to update a simple obj key. The key may be set
// exactly once, attempting to change an existing key panics.
func (o *SimpleObj) SetKey(key []byte) {
	if o.key != nil {
		panic("cannot modify the key of an object")
	}
	o.key = key
}

// Validate makes sure the fields aren't empty and that the value
// validates as well.
func (o SimpleObj) Validate() error {
	if len(o.key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "missing key")
	}
	if o.value == nil {
		return errors.Wrap(errors.ErrEmpty, "missing value")
	}
	return o.value.Validate()
}

// Clone makes a deep copy of the object. The key is copied so
// SetKey on the clone does not affect the original.
func (o SimpleObj) Clone() Object {
	res := &SimpleObj{
		value: o.value.Copy(),
	}
	if len(o.key) > 0 {
		res.key = append([]byte(nil), o.key...)
	}
	return res
}

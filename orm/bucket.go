package orm

import (
	"fmt"
	"regexp"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// Bucket is a generic holder that stores data as well as references
// to secondary indexes if needed. All keys are automatically prefixed
// with the bucket name to isolate it from other buckets in the same
// store.
type Bucket struct {
	name   string
	prefix []byte
	proto  Cloneable
}

var _ Reader = Bucket{}

// NewBucket creates a bucket to store data under the given name.
// The prototype object is cloned on every load, so the stored type
// never escapes.
func NewBucket(name string, proto Cloneable) Bucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("illegal bucket name: %s", name))
	}
	return Bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// Name returns the name of the bucket
func (b Bucket) Name() string {
	return b.name
}

// DBKey is the full key we store in the db, including the bucket prefix.
// The result is copied into a fresh slice. Appending to b.prefix would
// hand out slices sharing its backing array, so a later call with a key
// short enough to fit the spare capacity would overwrite earlier results.
func (b Bucket) DBKey(key []byte) []byte {
	l := len(b.prefix)
	out := make([]byte, l+len(key))
	copy(out, b.prefix)
	copy(out[l:], key)
	return out
}

// Get loads an object persisted under the given key. It returns a nil
// object if nothing is stored there.
func (b Bucket) Get(db msig.ReadOnlyKVStore, key []byte) (Object, error) {
	dbkey := b.DBKey(key)
	bz, err := db.Get(dbkey)
	if err != nil {
		return nil, err
	}
	if bz == nil {
		return nil, nil
	}
	return b.Parse(key, bz)
}

// Parse takes a key and value data (weakly typed bytes) and attempts
// to parse them into an object.
func (b Bucket) Parse(key, value []byte) (Object, error) {
	obj := b.proto.Clone()
	if err := obj.Value().Unmarshal(value); err != nil {
		return nil, errors.Wrapf(errors.ErrState, "parsing %s: %v", b.name, err)
	}
	obj.SetKey(key)
	return obj, nil
}

// Save persists the content of the given object. The object is
// validated before writing.
func (b Bucket) Save(db msig.KVStore, model Object) error {
	if err := model.Validate(); err != nil {
		return errors.Wrapf(err, "saving %s", b.name)
	}
	bz, err := model.Value().Marshal()
	if err != nil {
		return err
	}
	return db.Set(b.DBKey(model.Key()), bz)
}

// Delete removes the content stored under the given key, if any.
func (b Bucket) Delete(db msig.KVStore, key []byte) error {
	return db.Delete(b.DBKey(key))
}

// Sequence returns a named sequence scoped to this bucket.
func (b Bucket) Sequence(name string) Sequence {
	return NewSequence(b.name, name)
}

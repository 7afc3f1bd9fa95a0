package orm

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// IDGenerator defines an interface for custom id generators
type IDGenerator interface {
	// NextVal returns a new unique ID key
	NextVal(db msig.KVStore, obj CloneableData) ([]byte, error)
}

// IDGeneratorFunc provides IDGenerator interface support.
type IDGeneratorFunc func(db msig.KVStore, obj CloneableData) ([]byte, error)

// NextVal returns a new unique ID key
func (i IDGeneratorFunc) NextVal(db msig.KVStore, obj CloneableData) ([]byte, error) {
	return i(db, obj)
}

// IDGenBucket is a bucket that assigns keys from an id generator on
// create.
type IDGenBucket struct {
	Bucket
	idGen IDGenerator
}

// WithSeqIDGenerator adds a sequence for automatic ID generation on
// Create.
func WithSeqIDGenerator(b Bucket, seqName string) IDGenBucket {
	seq := b.Sequence(seqName)
	return WithIDGenerator(b, IDGeneratorFunc(func(db msig.KVStore, _ CloneableData) ([]byte, error) {
		return seq.NextVal(db)
	}))
}

// WithIDGenerator creates an IDGenBucket with a custom id generation
// strategy.
func WithIDGenerator(b Bucket, gen IDGenerator) IDGenBucket {
	return IDGenBucket{
		Bucket: b,
		idGen:  gen,
	}
}

// Create saves the given data in the bucket under a new generated ID
// key. The new object is returned so the caller can read the key.
func (b IDGenBucket) Create(db msig.KVStore, data CloneableData) (Object, error) {
	id, err := b.idGen.NextVal(db, data)
	if err != nil {
		return nil, errors.Wrap(err, "id generation")
	}
	obj := NewSimpleObj(id, data)
	return obj, b.Save(db, obj)
}

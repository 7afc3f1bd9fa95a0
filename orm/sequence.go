package orm

import (
	"encoding/binary"
	"fmt"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Sequence maintains a counter in the database. Every call to NextVal
// increments it by one and persists the new value.
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter scoped to the given bucket
// and name.
func NewSequence(bucket, name string) Sequence {
	id := fmt.Sprintf("_s.%s:%s", bucket, name)
	return Sequence{
		id: []byte(id),
	}
}

// NextVal increments the sequence and returns its state as 8 bytes
// in big endian order.
func (s Sequence) NextVal(db msig.KVStore) ([]byte, error) {
	_, bz, err := s.increment(db)
	return bz, err
}

// NextInt increments the sequence and returns its state as an int64.
func (s Sequence) NextInt(db msig.KVStore) (int64, error) {
	val, _, err := s.increment(db)
	return val, err
}

func (s Sequence) increment(db msig.KVStore) (int64, []byte, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, nil, err
	}
	val := DecodeSequence(raw)
	val++
	bz := EncodeSequence(val)
	if err := db.Set(s.id, bz); err != nil {
		return 0, nil, err
	}
	return val, bz, nil
}

// DecodeSequence converts a sequence value to an int64. A nil value
// decodes to zero.
func DecodeSequence(bz []byte) int64 {
	if bz == nil {
		return 0
	}
	if len(bz) != 8 {
		panic(errors.Wrapf(errors.ErrInput, "sequence bytes: %X", bz))
	}
	val := binary.BigEndian.Uint64(bz)
	return int64(val)
}

// EncodeSequence converts an int64 to a fixed 8 byte big endian value.
func EncodeSequence(val int64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(val))
	return bz
}

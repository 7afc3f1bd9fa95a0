package msigtest

import (
	"encoding/binary"
	"sync/atomic"

	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// conditionCounter makes every generated condition unique within a
// test binary run.
var conditionCounter int64

// NewCondition returns a new, unique condition.
func NewCondition() msig.Condition {
	cnt := atomic.AddInt64(&conditionCounter, 1)
	data := make([]byte, 8)
	binary.BigEndian.PutUint64(data, uint64(cnt))
	return msig.NewCondition("msigtest", "cond", data)
}

// SequenceID returns the binary representation of a sequence counter,
// as used for bucket keys assigned by a sequence id generator.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

package msig

import (
	"github.com/tendermint/tendermint/libs/common"

	"github.com/vortex-hue/multisig-dao-wallet/coin"
)

// DeliverResult captures any non-error result of processing a transaction,
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// RequiredFee can set a custom fee that must be paid for this
	// transaction to be allowed to run. This may be enforced by a
	// decorator.
	RequiredFee coin.Coin
	// Tags, if present, will be used to index and search the
	// transaction history
	Tags []common.KVPair
	// GasUsed is the units of work performed by this transaction
	GasUsed int64
}

// CheckResult captures any non-error result of the pre-flight transaction
// check
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// RequiredFee can set a custom fee that must be paid for this
	// transaction to be allowed to run.
	RequiredFee coin.Coin
	// GasAllocated is the maximum units of work we allow this tx to
	// perform
	GasAllocated int64
	// GasPayment is the total fees for this tx (or other source of
	// payment)
	GasPayment int64
}

// NewCheck sets the gas allocated and the log message but no more info;
// these are the most common fields needed to be set by a Handler
func NewCheck(gasAllocated int64, log string) CheckResult {
	return CheckResult{
		GasAllocated: gasAllocated,
		Log:          log,
	}
}

package utils

import (
	"time"

	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Logging is a decorator that records the duration and the outcome of
// every transaction in the context logger.
type Logging struct{}

var _ msig.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error/duration and passes the call along
func (l Logging) Check(ctx msig.Context, store msig.KVStore, tx msig.Tx, next msig.Checker) (*msig.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	l.log("check", ctx, tx, start, err)
	return res, err
}

// Deliver logs error/duration and passes the call along
func (l Logging) Deliver(ctx msig.Context, store msig.KVStore, tx msig.Tx, next msig.Deliverer) (*msig.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	l.log("deliver", ctx, tx, start, err)
	return res, err
}

func (Logging) log(kind string, ctx msig.Context, tx msig.Tx, start time.Time, err error) {
	logger := msig.GetLogger(ctx).With(
		"call", kind,
		"path", msig.GetPath(tx),
		"duration", time.Since(start),
	)
	if err != nil {
		logger.With("err", err).Error("transaction failed", "code", errorCode(err))
	} else {
		logger.Info("transaction")
	}
}

// errorCode walks the cause chain looking for a registered root error.
// Unclassified errors report code 1.
func errorCode(err error) uint32 {
	type coder interface {
		Code() uint32
	}
	type causer interface {
		Cause() error
	}
	for err != nil {
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return 1
}

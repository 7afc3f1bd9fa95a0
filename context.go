package msig

import (
	"context"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Context is just a standard context, declared here so every package in
// this module names the same thing.
type Context = context.Context

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTime
)

var (
	// DefaultLogger is used for all context that have not
	// set anything themselves
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID is the RegExp to ensure valid chain IDs
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// WithHeight sets the block height for the Context.
// Must never be overwritten.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Height already set")
	}
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height, ok is false if no height set
// in this Context.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id for the Context.
// Must never be overwritten.
func WithChainID(ctx Context, chainID string) Context {
	if ctx.Value(contextKeyChainID) != nil {
		panic("Chain ID already set")
	}
	if !IsValidChainID(chainID) {
		panic("Invalid chain ID: " + chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the Context.
// Panics if not set, as this is a framework error, not a user error.
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("Chain ID not set")
	}
	return val
}

// WithBlockTime sets the block time for the Context. Time should be
// quantized to seconds as the consensus engine provides it.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, contextKeyTime, t)
}

// BlockTime returns the block time declared for this Context, ok is false
// when the time was never set.
func BlockTime(ctx Context) (time.Time, bool) {
	val, ok := ctx.Value(contextKeyTime).(time.Time)
	return val, ok
}

// IsExpired returns true if given time is in the past as compared to the
// "now" declared for the block. Expiration is inclusive, meaning that if
// current time is equal to the expiration time than this function returns
// true. This function panics when block time is not present in the context.
func IsExpired(ctx Context, t UnixTime) bool {
	now, ok := BlockTime(ctx)
	if !ok {
		panic(errors.Wrap(errors.ErrHuman, "block time not set"))
	}
	return t <= AsUnixTime(now)
}

// WithLogger sets the logger for this Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	// Logger can be overwritten, unlike height or chain id.
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger from the Context, or DefaultLogger when
// none was attached.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

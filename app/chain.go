package app

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Decorators holds a chain of decorators, not yet bound to a handler.
type Decorators struct {
	chain []msig.Decorator
}

// ChainDecorators takes a series of decorators and wraps them into one
// stack, to be bound to a final handler with WithHandler.
func ChainDecorators(chain ...msig.Decorator) Decorators {
	return Decorators{
		chain: chain,
	}
}

// Chain appends more decorators to the stack.
func (d Decorators) Chain(chain ...msig.Decorator) Decorators {
	return Decorators{
		chain: append(d.chain, chain...),
	}
}

// WithHandler binds the stack to an end handler and returns a single
// handler that runs the full chain.
func (d Decorators) WithHandler(h msig.Handler) msig.Handler {
	// wrap from the inside out
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = chainLink{d.chain[i], h}
	}
	return h
}

// chainLink invokes one decorator with the rest of the stack as next.
type chainLink struct {
	dec  msig.Decorator
	next msig.Handler
}

var _ msig.Handler = chainLink{}

func (l chainLink) Check(ctx msig.Context, store msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	return l.dec.Check(ctx, store, tx, l.next)
}

func (l chainLink) Deliver(ctx msig.Context, store msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	return l.dec.Deliver(ctx, store, tx, l.next)
}

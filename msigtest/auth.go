package msigtest

import (
	"context"

	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Auth is a mock authenticator implementation. It authenticates all
// conditions set on the instance, regardless of the context.
type Auth struct {
	// Signer is the main signer of the context.
	Signer msig.Condition
	// Signers are additional signers. Signer, if set, is always
	// returned first.
	Signers []msig.Condition
}

func (a *Auth) GetConditions(msig.Context) []msig.Condition {
	if a.Signer == nil {
		return a.Signers
	}
	return append([]msig.Condition{a.Signer}, a.Signers...)
}

func (a *Auth) HasAddress(ctx msig.Context, addr msig.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

// CtxAuth is an authenticator that reads conditions from the context,
// stored under the given key. Use SetConditions to sign a context.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context with the given conditions attached,
// visible to this authenticator.
func (a CtxAuth) SetConditions(ctx msig.Context, perms ...msig.Condition) msig.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), perms)
}

func (a CtxAuth) GetConditions(ctx msig.Context) []msig.Condition {
	val := ctx.Value(ctxAuthKey(a.Key))
	if val == nil {
		return nil
	}
	return val.([]msig.Condition)
}

func (a CtxAuth) HasAddress(ctx msig.Context, addr msig.Address) bool {
	for _, s := range a.GetConditions(ctx) {
		if addr.Equals(s.Address()) {
			return true
		}
	}
	return false
}

package x

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
)

// Authenticator is an interface we can use to extract authentication
// info from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system besides
// signature verification.
type Authenticator interface {
	// GetConditions reveals all conditions fulfilled,
	// you may want GetAddresses helper
	GetConditions(msig.Context) []msig.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(msig.Context, msig.Address) bool
}

// MultiAuth chains together many Authenticators
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetConditions combines all conditions from all chained authenticators
func (m MultiAuth) GetConditions(ctx msig.Context) []msig.Condition {
	var res []msig.Condition
	for _, impl := range m.impls {
		add := impl.GetConditions(ctx)
		if len(add) > 0 {
			res = append(res, add...)
		}
	}
	// TODO: remove duplicates
	return res
}

// HasAddress returns true if any chained authenticator matches
func (m MultiAuth) HasAddress(ctx msig.Context, addr msig.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// GetAddresses wraps the GetConditions method of any authenticator
func GetAddresses(ctx msig.Context, auth Authenticator) []msig.Address {
	perms := auth.GetConditions(ctx)
	addrs := make([]msig.Address, len(perms))
	for i, p := range perms {
		addrs[i] = p.Address()
	}
	return addrs
}

// MainSigner returns the first condition from the authenticator, or
// nil when there is none.
func MainSigner(ctx msig.Context, auth Authenticator) msig.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx msig.Context, auth Authenticator, required []msig.Address) bool {
	for _, r := range required {
		if !auth.HasAddress(ctx, r) {
			return false
		}
	}
	return true
}

// HasNAddresses returns true if at least n elements in requested are
// also in context
func HasNAddresses(ctx msig.Context, auth Authenticator, requested []msig.Address, n int) bool {
	// Special case: is this an error???
	if n <= 0 {
		return true
	}
	remaining := n
	for _, addr := range requested {
		if auth.HasAddress(ctx, addr) {
			remaining--
			if remaining == 0 {
				return true
			}
		}
	}
	return false
}

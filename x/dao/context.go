package dao

import (
	"context"

	msig "github.com/vortex-hue/multisig-dao-wallet"
)

type contextKey int

const contextKeyWallets contextKey = iota

// withWallet adds the wallet condition to the context, so executors
// dispatched during proposal execution can authenticate the wallet
// itself as the acting party.
func withWallet(ctx msig.Context, id []byte) msig.Context {
	val, _ := ctx.Value(contextKeyWallets).([]msig.Condition)
	return context.WithValue(ctx, contextKeyWallets, append(val, WalletCondition(id)))
}

// WalletCondition returns the condition a wallet fulfills when one of
// its proposals is executed.
func WalletCondition(id []byte) msig.Condition {
	if len(id) == 0 {
		panic("missing wallet id")
	}
	return msig.NewCondition("dao", "wallet", id)
}

// Authenticate gets/sets permissions on the given context key.
// Authenticates the wallets whose proposals are being executed.
type Authenticate struct{}

// GetConditions returns the wallet conditions attached to the context.
func (a Authenticate) GetConditions(ctx msig.Context) []msig.Condition {
	val, _ := ctx.Value(contextKeyWallets).([]msig.Condition)
	return val
}

// HasAddress returns true if the given address belongs to a wallet
// authenticated on the context.
func (a Authenticate) HasAddress(ctx msig.Context, addr msig.Address) bool {
	for _, cond := range a.GetConditions(ctx) {
		if cond.Address().Equals(addr) {
			return true
		}
	}
	return false
}

package dao

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/coin"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// ChargeSpending meters an amount against the wallet spending limit.
// When the metering window has elapsed, the accumulator is reset
// first and a new window starts at now. Wallets without a configured
// limit accept any amount.
func (w *WalletConfig) ChargeSpending(now msig.UnixTime, amount coin.Coin) error {
	if amount.IsZero() {
		return nil
	}
	if !amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "charge must be positive")
	}
	if w.SpendingLimit == nil {
		return nil
	}
	if !amount.SameType(*w.SpendingLimit) {
		return errors.Wrapf(errors.ErrAmount, "cannot charge %s against %s limit",
			amount.Ticker, w.SpendingLimit.Ticker)
	}

	if w.SpendingPeriod > 0 && now >= w.LastSpendingReset.Add(w.SpendingPeriod.Duration()) {
		w.SpendingUsed = coin.NewCoinp(0, 0, w.SpendingLimit.Ticker)
		w.LastSpendingReset = now
	}

	used := coin.NewCoin(0, 0, w.SpendingLimit.Ticker)
	if w.SpendingUsed != nil {
		used = *w.SpendingUsed
	}
	total, err := used.Add(amount)
	if err != nil {
		return errors.Wrap(err, "spending accumulator")
	}
	if !w.SpendingLimit.IsGTE(total) {
		return errors.Wrapf(ErrSpendingLimitExceeded,
			"%s exceeds remaining allowance of period", amount)
	}
	w.SpendingUsed = &total
	return nil
}

// ResetSpending starts a fresh metering window with a zero
// accumulator.
func (w *WalletConfig) ResetSpending(now msig.UnixTime) {
	if w.SpendingLimit == nil {
		w.SpendingUsed = nil
	} else {
		w.SpendingUsed = coin.NewCoinp(0, 0, w.SpendingLimit.Ticker)
	}
	w.LastSpendingReset = now
}

package dao

import (
	"testing"

	"github.com/vortex-hue/multisig-dao-wallet/coin"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest/assert"
)

func TestChargeSpendingWithinLimit(t *testing.T) {
	w := walletFixture(msigtest.NewCondition().Address())
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600
	w.ResetSpending(1000)

	assert.Nil(t, w.ChargeSpending(1000, coin.NewCoin(4, 0, "IOV")))
	assert.Nil(t, w.ChargeSpending(1500, coin.NewCoin(6, 0, "IOV")))
	assert.Equal(t, coin.NewCoin(10, 0, "IOV"), *w.SpendingUsed)

	// the limit is fully used up now
	err := w.ChargeSpending(2000, coin.NewCoin(0, 1, "IOV"))
	assert.IsErr(t, ErrSpendingLimitExceeded, err)
}

func TestChargeSpendingOverdraw(t *testing.T) {
	w := walletFixture(msigtest.NewCondition().Address())
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600
	w.ResetSpending(1000)

	err := w.ChargeSpending(1000, coin.NewCoin(11, 0, "IOV"))
	assert.IsErr(t, ErrSpendingLimitExceeded, err)
	// a failed charge does not consume allowance
	assert.Equal(t, coin.NewCoin(0, 0, "IOV"), *w.SpendingUsed)
}

func TestChargeSpendingWindowReset(t *testing.T) {
	w := walletFixture(msigtest.NewCondition().Address())
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600
	w.ResetSpending(1000)

	assert.Nil(t, w.ChargeSpending(1000, coin.NewCoin(10, 0, "IOV")))

	// within the window the limit stays exhausted
	err := w.ChargeSpending(4599, coin.NewCoin(1, 0, "IOV"))
	assert.IsErr(t, ErrSpendingLimitExceeded, err)

	// one period later the accumulator resets and the window restarts
	assert.Nil(t, w.ChargeSpending(4600, coin.NewCoin(7, 0, "IOV")))
	assert.Equal(t, coin.NewCoin(7, 0, "IOV"), *w.SpendingUsed)
	assert.Equal(t, int64(4600), int64(w.LastSpendingReset))
}

func TestChargeSpendingUnmetered(t *testing.T) {
	w := walletFixture(msigtest.NewCondition().Address())
	// no limit configured, everything goes through
	assert.Nil(t, w.ChargeSpending(1000, coin.NewCoin(1000000, 0, "IOV")))
}

func TestChargeSpendingWrongCurrency(t *testing.T) {
	w := walletFixture(msigtest.NewCondition().Address())
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600
	w.ResetSpending(1000)

	err := w.ChargeSpending(1000, coin.NewCoin(1, 0, "BTC"))
	assert.IsErr(t, errors.ErrAmount, err)
}

func TestChargeSpendingZeroAmount(t *testing.T) {
	w := walletFixture(msigtest.NewCondition().Address())
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600
	w.ResetSpending(1000)

	assert.Nil(t, w.ChargeSpending(1000, coin.NewCoin(0, 0, "IOV")))
	assert.Equal(t, coin.NewCoin(0, 0, "IOV"), *w.SpendingUsed)
}

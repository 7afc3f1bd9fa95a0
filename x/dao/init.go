package dao

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/coin"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ msig.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial wallets from the "dao" key in the
// genesis options and create them.
func (Initializer) FromGenesis(opts msig.Options, db msig.KVStore) error {
	var wallets []struct {
		Authority       msig.Address      `json:"authority"`
		Signers         []msig.Address    `json:"signers"`
		Threshold       uint32            `json:"threshold"`
		ProposalTimeout msig.UnixDuration `json:"proposal_timeout"`
		SpendingLimit   *coin.Coin        `json:"spending_limit"`
		SpendingPeriod  msig.UnixDuration `json:"spending_period"`
	}
	if err := opts.ReadOptions("dao", &wallets); err != nil {
		return errors.Wrap(err, "cannot load dao genesis")
	}

	bucket := NewWalletBucket()
	for i, w := range wallets {
		members := make([]Member, len(w.Signers))
		for j, s := range w.Signers {
			members[j] = Member{Address: s, Role: RoleMember, Active: true}
		}
		wallet := &WalletConfig{
			Authority:       w.Authority,
			Signers:         w.Signers,
			Threshold:       w.Threshold,
			ProposalTimeout: w.ProposalTimeout,
			SpendingLimit:   w.SpendingLimit,
			SpendingPeriod:  w.SpendingPeriod,
			Active:          true,
			Members:         members,
		}
		if wallet.SpendingLimit != nil {
			wallet.ResetSpending(0)
		}
		if _, err := bucket.Create(db, wallet); err != nil {
			return errors.Wrapf(err, "wallet %d", i)
		}
	}
	return nil
}

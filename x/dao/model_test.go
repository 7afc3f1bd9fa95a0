package dao

import (
	"testing"
	"time"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/coin"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest/assert"
)

func walletFixture(signers ...msig.Address) *WalletConfig {
	members := make([]Member, len(signers))
	for i, s := range signers {
		members[i] = Member{Address: s, Role: RoleMember, Active: true}
	}
	return &WalletConfig{
		Authority:       msigtest.NewCondition().Address(),
		Signers:         signers,
		Threshold:       2,
		ProposalTimeout: msig.AsUnixDuration(24 * time.Hour),
		Active:          true,
		Members:         members,
	}
}

func TestWalletConfigValidate(t *testing.T) {
	a := msigtest.NewCondition().Address()
	b := msigtest.NewCondition().Address()
	c := msigtest.NewCondition().Address()

	cases := map[string]struct {
		mod     func(*WalletConfig)
		wantErr *errors.Error
	}{
		"valid wallet": {
			mod: func(*WalletConfig) {},
		},
		"threshold zero": {
			mod:     func(w *WalletConfig) { w.Threshold = 0 },
			wantErr: ErrInvalidThreshold,
		},
		"threshold above signer count": {
			mod:     func(w *WalletConfig) { w.Threshold = 4 },
			wantErr: ErrInvalidThreshold,
		},
		"no signers": {
			mod: func(w *WalletConfig) {
				w.Signers = nil
				w.Members = nil
			},
			wantErr: errors.ErrMsg,
		},
		"duplicate signer": {
			mod: func(w *WalletConfig) {
				w.Signers[2] = w.Signers[0]
				w.Members[2].Address = w.Members[0].Address
			},
			wantErr: errors.ErrDuplicate,
		},
		"zero proposal timeout": {
			mod:     func(w *WalletConfig) { w.ProposalTimeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		"negative spending limit": {
			mod: func(w *WalletConfig) {
				w.SpendingLimit = coin.NewCoinp(-5, 0, "IOV")
				w.SpendingPeriod = 60
			},
			wantErr: ErrInvalidSpendingLimit,
		},
		"zero spending limit": {
			mod: func(w *WalletConfig) {
				w.SpendingLimit = coin.NewCoinp(0, 0, "IOV")
				w.SpendingPeriod = 60
			},
			wantErr: ErrInvalidSpendingLimit,
		},
		"spending limit without period": {
			mod: func(w *WalletConfig) {
				w.SpendingLimit = coin.NewCoinp(5, 0, "IOV")
			},
			wantErr: ErrInvalidTimeout,
		},
		"members out of sync": {
			mod:     func(w *WalletConfig) { w.Members = w.Members[1:] },
			wantErr: errors.ErrState,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := walletFixture(a, b, c)
			tc.mod(w)
			assert.IsErr(t, tc.wantErr, w.Validate())
		})
	}
}

func TestTooManySigners(t *testing.T) {
	signers := make([]msig.Address, maxSigners+1)
	for i := range signers {
		signers[i] = msigtest.NewCondition().Address()
	}
	w := walletFixture(signers...)
	assert.IsErr(t, errors.ErrMsg, w.Validate())
}

func proposalFixture(walletID []byte, proposer msig.Address) *Proposal {
	return &Proposal{
		WalletID:    walletID,
		Proposer:    proposer,
		Description: "fund the infrastructure team",
		Category:    CategoryRegular,
		Instructions: []InstructionData{
			{Target: msigtest.NewCondition().Address(), Payload: []byte("transfer")},
		},
		Expiration: 2000,
		Status:     StatusPending,
		CreatedAt:  1000,
	}
}

func TestProposalValidate(t *testing.T) {
	proposer := msigtest.NewCondition().Address()

	cases := map[string]struct {
		mod     func(*Proposal)
		wantErr *errors.Error
	}{
		"valid proposal": {
			mod: func(*Proposal) {},
		},
		"missing wallet id": {
			mod:     func(p *Proposal) { p.WalletID = nil },
			wantErr: errors.ErrEmpty,
		},
		"description too long": {
			mod: func(p *Proposal) {
				d := make([]byte, maxDescriptionLen+1)
				for i := range d {
					d[i] = 'x'
				}
				p.Description = string(d)
			},
			wantErr: errors.ErrMsg,
		},
		"no instructions": {
			mod:     func(p *Proposal) { p.Instructions = nil },
			wantErr: errors.ErrEmpty,
		},
		"too many instructions": {
			mod: func(p *Proposal) {
				for i := 0; i < maxInstructions; i++ {
					p.Instructions = append(p.Instructions, p.Instructions[0])
				}
			},
			wantErr: errors.ErrMsg,
		},
		"oversized payload": {
			mod: func(p *Proposal) {
				p.Instructions[0].Payload = make([]byte, maxPayloadSize+1)
			},
			wantErr: errors.ErrMsg,
		},
		"too many metas": {
			mod: func(p *Proposal) {
				metas := make([]InstructionMeta, maxInstructionMetas+1)
				for i := range metas {
					metas[i] = InstructionMeta{Address: proposer}
				}
				p.Instructions[0].Metas = metas
			},
			wantErr: errors.ErrMsg,
		},
		"missing expiration": {
			mod:     func(p *Proposal) { p.Expiration = 0 },
			wantErr: ErrInvalidExpiration,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := proposalFixture([]byte("wallet"), proposer)
			tc.mod(p)
			assert.IsErr(t, tc.wantErr, p.Validate())
		})
	}
}

func TestRequiredApprovals(t *testing.T) {
	cases := map[string]struct {
		category  ProposalCategory
		threshold uint32
		want      uint32
	}{
		"regular needs the threshold":   {CategoryRegular, 2, 2},
		"admin needs one more":          {CategoryAdmin, 2, 3},
		"emergency needs one less":      {CategoryEmergency, 2, 1},
		"emergency floors at one":       {CategoryEmergency, 1, 1},
		"regular with high threshold":   {CategoryRegular, 7, 7},
		"admin with single threshold":   {CategoryAdmin, 1, 2},
		"emergency with high threshold": {CategoryEmergency, 5, 4},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, requiredApprovals(tc.category, tc.threshold))
		})
	}
}

func TestProposalApprove(t *testing.T) {
	a := msigtest.NewCondition().Address()
	b := msigtest.NewCondition().Address()

	p := proposalFixture([]byte("wallet"), a)

	assert.Nil(t, p.Approve(a, 2))
	assert.Equal(t, StatusPending, p.Status)

	// the same signer cannot approve twice
	assert.IsErr(t, ErrAlreadyApproved, p.Approve(a, 2))
	assert.Equal(t, 1, len(p.Approvals))

	// the second distinct approval crosses the threshold
	assert.Nil(t, p.Approve(b, 2))
	assert.Equal(t, StatusApproved, p.Status)
}

func TestProposalReject(t *testing.T) {
	a := msigtest.NewCondition().Address()

	p := proposalFixture([]byte("wallet"), a)
	assert.Nil(t, p.Reject(a))
	assert.IsErr(t, ErrAlreadyRejected, p.Reject(a))

	// rejections never transition the proposal
	assert.Equal(t, StatusPending, p.Status)
}

func TestUpdateSignersPreservesMembers(t *testing.T) {
	a := msigtest.NewCondition().Address()
	b := msigtest.NewCondition().Address()
	c := msigtest.NewCondition().Address()
	d := msigtest.NewCondition().Address()

	w := walletFixture(a, b, c)
	w.Members[0].Role = RoleAdmin
	w.Members[0].Delegate = d

	assert.Nil(t, w.UpdateSigners([]msig.Address{a, d}, 2))

	// surviving member keeps role and delegate
	assert.Equal(t, RoleAdmin, w.Members[0].Role)
	assert.Equal(t, d, w.Members[0].Delegate)
	// new member joins with defaults
	assert.Equal(t, RoleMember, w.Members[1].Role)
	assert.Equal(t, true, w.Members[1].Active)
	assert.Equal(t, 2, len(w.Signers))

	// dropped signer is gone
	assert.Equal(t, false, w.IsSigner(b))
	assert.Nil(t, w.Member(c))
}

func TestUpdateSignersRejectsBadThreshold(t *testing.T) {
	a := msigtest.NewCondition().Address()
	b := msigtest.NewCondition().Address()

	w := walletFixture(a, b)
	assert.IsErr(t, ErrInvalidThreshold, w.UpdateSigners([]msig.Address{a}, 2))
	// wallet unchanged on failure
	assert.Equal(t, 2, len(w.Signers))
}

func TestWalletConfigCopy(t *testing.T) {
	a := msigtest.NewCondition().Address()
	b := msigtest.NewCondition().Address()

	w := walletFixture(a, b)
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600

	cpy := w.Copy().(*WalletConfig)
	cpy.Members[0].Role = RoleTreasurer
	cpy.SpendingLimit.Whole = 99

	assert.Equal(t, RoleMember, w.Members[0].Role)
	assert.Equal(t, int64(10), w.SpendingLimit.Whole)
}

func TestProposalCopy(t *testing.T) {
	a := msigtest.NewCondition().Address()
	p := proposalFixture([]byte("wallet"), a)
	p.Instructions[0].Amount = coin.NewCoinp(1, 0, "IOV")

	cpy := p.Copy().(*Proposal)
	cpy.Instructions[0].Payload[0] = 'X'
	cpy.Instructions[0].Amount.Whole = 5
	cpy.Approvals = append(cpy.Approvals, a)

	assert.Equal(t, byte('t'), p.Instructions[0].Payload[0])
	assert.Equal(t, int64(1), p.Instructions[0].Amount.Whole)
	assert.Equal(t, 0, len(p.Approvals))
}

func TestPersistentRoundTrip(t *testing.T) {
	a := msigtest.NewCondition().Address()
	b := msigtest.NewCondition().Address()

	w := walletFixture(a, b)
	w.SpendingLimit = coin.NewCoinp(10, 0, "IOV")
	w.SpendingPeriod = 3600
	raw, err := w.Marshal()
	assert.Nil(t, err)
	var loaded WalletConfig
	assert.Nil(t, loaded.Unmarshal(raw))
	assert.Equal(t, w.Threshold, loaded.Threshold)
	assert.Equal(t, len(w.Members), len(loaded.Members))
	assert.Equal(t, *w.SpendingLimit, *loaded.SpendingLimit)

	p := proposalFixture([]byte("wallet"), a)
	raw, err = p.Marshal()
	assert.Nil(t, err)
	var lp Proposal
	assert.Nil(t, lp.Unmarshal(raw))
	assert.Equal(t, p.Description, lp.Description)
	assert.Equal(t, len(p.Instructions), len(lp.Instructions))
}

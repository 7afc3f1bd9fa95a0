package dao

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/common"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/orm"
	"github.com/vortex-hue/multisig-dao-wallet/x"
)

const (
	newWalletCost int64 = 300
	proposalCost  int64 = 200
	voteCost      int64 = 100
	executeCost   int64 = 500
	updateCost    int64 = 150
)

const (
	tagWalletID   = "wallet-id"
	tagProposalID = "proposal-id"
)

// RegisterRoutes will instantiate and register all handlers in this
// package. The executor receives every instruction of executed
// proposals and may be nil when execution side effects are handled
// elsewhere.
func RegisterRoutes(r msig.Registry, auth x.Authenticator, executor Executor) {
	wallets := NewWalletBucket()
	proposals := NewProposalBucket()

	r.Handle(pathCreateWallet, CreateWalletHandler{auth: auth, wallets: wallets})
	r.Handle(pathAddProposal, AddProposalHandler{auth: auth, wallets: wallets, proposals: proposals})
	r.Handle(pathApproveProposal, ApproveProposalHandler{auth: auth, wallets: wallets, proposals: proposals})
	r.Handle(pathRejectProposal, RejectProposalHandler{auth: auth, wallets: wallets, proposals: proposals})
	r.Handle(pathExecuteProposal, ExecuteProposalHandler{wallets: wallets, proposals: proposals, executor: executor})
	r.Handle(pathUpdateSigners, UpdateSignersHandler{auth: auth, wallets: wallets})
	r.Handle(pathSetSpendingLimits, SetSpendingLimitsHandler{auth: auth, wallets: wallets})
	r.Handle(pathDelegateVote, DelegateVoteHandler{auth: auth, wallets: wallets})
	r.Handle(pathEmergencyExecute, EmergencyExecuteHandler{auth: auth, wallets: wallets, executor: executor})
	r.Handle(pathDeactivateWallet, DeactivateWalletHandler{auth: auth, wallets: wallets})
}

// blockNow returns the block time attached to the context as UNIX
// time.
func blockNow(ctx msig.Context) (msig.UnixTime, error) {
	t, ok := msig.BlockTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not set")
	}
	return msig.AsUnixTime(t), nil
}

// signerAddress returns the first authenticated address that belongs
// to the wallet signer set. Delegates are not accepted, a vote must
// come from the signer itself.
func signerAddress(ctx msig.Context, auth x.Authenticator, wallet *WalletConfig) (msig.Address, error) {
	for _, addr := range x.GetAddresses(ctx, auth) {
		if wallet.IsSigner(addr) {
			return addr, nil
		}
	}
	return nil, errors.Wrap(errors.ErrUnauthorized, "not a wallet signer")
}

// authorityCheck ensures the wallet authority authorized the
// transaction.
func authorityCheck(ctx msig.Context, auth x.Authenticator, wallet *WalletConfig) error {
	if !auth.HasAddress(ctx, wallet.Authority) {
		return errors.Wrap(errors.ErrUnauthorized, "authority signature required")
	}
	return nil
}

// CreateWalletHandler creates a new wallet. The main signer becomes
// the wallet authority.
type CreateWalletHandler struct {
	auth    x.Authenticator
	wallets WalletBucket
}

var _ msig.Handler = CreateWalletHandler{}

func (h CreateWalletHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: newWalletCost}, nil
}

func (h CreateWalletHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	authority := x.MainSigner(ctx, h.auth)
	if authority == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction must be signed")
	}

	members := make([]Member, len(msg.Signers))
	for i, s := range msg.Signers {
		members[i] = Member{Address: s, Role: RoleMember, Active: true}
	}
	wallet := &WalletConfig{
		Authority:       authority.Address(),
		Signers:         msg.Signers,
		Threshold:       msg.Threshold,
		ProposalTimeout: msg.ProposalTimeout,
		SpendingLimit:   msg.SpendingLimit,
		SpendingPeriod:  msg.SpendingPeriod,
		Active:          true,
		Members:         members,
	}
	if msg.SpendingLimit != nil {
		wallet.ResetSpending(now)
	}

	obj, err := h.wallets.Create(db, wallet)
	if err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Data: obj.Key(),
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: obj.Key()},
		},
	}, nil
}

func (h CreateWalletHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*CreateWalletMsg, error) {
	var msg CreateWalletMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// AddProposalHandler opens a proposal on a wallet. Only wallet
// signers may propose.
type AddProposalHandler struct {
	auth      x.Authenticator
	wallets   WalletBucket
	proposals ProposalBucket
}

var _ msig.Handler = AddProposalHandler{}

func (h AddProposalHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: proposalCost}, nil
}

func (h AddProposalHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, proposer, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	expiration := msg.Expiration
	if expiration.IsZero() {
		expiration = now.Add(wallet.ProposalTimeout.Duration())
	}
	if expiration <= now {
		return nil, errors.Wrapf(ErrInvalidExpiration, "%s is not in the future", expiration)
	}

	wallet.ProposalCount++
	proposalID := wallet.ProposalCount

	proposal := &Proposal{
		WalletID:     msg.WalletID,
		Proposer:     proposer,
		Description:  msg.Description,
		Category:     msg.Category,
		Instructions: msg.Instructions,
		Expiration:   expiration,
		Status:       StatusPending,
		CreatedAt:    now,
	}
	if err := h.proposals.SaveProposal(db, msg.WalletID, proposalID, proposal); err != nil {
		return nil, err
	}
	if err := h.wallets.SaveWalletConfig(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}

	idBytes := orm.EncodeSequence(int64(proposalID))
	return &msig.DeliverResult{
		Data: idBytes,
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
			{Key: []byte(tagProposalID), Value: idBytes},
		},
	}, nil
}

func (h AddProposalHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*AddProposalMsg, *WalletConfig, msig.Address, error) {
	var msg AddProposalMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	proposer, err := signerAddress(ctx, h.auth, wallet)
	if err != nil {
		return nil, nil, nil, err
	}
	return &msg, wallet, proposer, nil
}

// ApproveProposalHandler records an approval vote on a pending
// proposal and promotes it once enough approvals are in.
type ApproveProposalHandler struct {
	auth      x.Authenticator
	wallets   WalletBucket
	proposals ProposalBucket
}

var _ msig.Handler = ApproveProposalHandler{}

func (h ApproveProposalHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: voteCost}, nil
}

func (h ApproveProposalHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, proposal, voter, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := proposal.Approve(voter, wallet.Threshold); err != nil {
		return nil, err
	}
	if err := h.proposals.SaveProposal(db, msg.WalletID, msg.ProposalID, proposal); err != nil {
		return nil, err
	}
	log := "proposal " + proposal.Status.String()
	if proposal.Status == StatusPending {
		missing := requiredApprovals(proposal.Category, wallet.Threshold) - uint32(len(proposal.Approvals))
		log = fmt.Sprintf("%d more approvals required", missing)
	}
	return &msig.DeliverResult{
		Log: log,
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
			{Key: []byte(tagProposalID), Value: orm.EncodeSequence(int64(msg.ProposalID))},
		},
	}, nil
}

func (h ApproveProposalHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*ApproveProposalMsg, *WalletConfig, *Proposal, msig.Address, error) {
	var msg ApproveProposalMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, nil, err
	}
	wallet, proposal, voter, err := loadForVote(ctx, db, h.auth, h.wallets, h.proposals, msg.WalletID, msg.ProposalID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if proposal.HasApproved(voter) {
		return nil, nil, nil, nil, errors.Wrapf(ErrAlreadyApproved, "signer %s", voter)
	}
	return &msg, wallet, proposal, voter, nil
}

// RejectProposalHandler records a rejection vote. The vote is
// bookkeeping only and does not change the proposal status.
type RejectProposalHandler struct {
	auth      x.Authenticator
	wallets   WalletBucket
	proposals ProposalBucket
}

var _ msig.Handler = RejectProposalHandler{}

func (h RejectProposalHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: voteCost}, nil
}

func (h RejectProposalHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, proposal, voter, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := proposal.Reject(voter); err != nil {
		return nil, err
	}
	if err := h.proposals.SaveProposal(db, msg.WalletID, msg.ProposalID, proposal); err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
			{Key: []byte(tagProposalID), Value: orm.EncodeSequence(int64(msg.ProposalID))},
		},
	}, nil
}

func (h RejectProposalHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*RejectProposalMsg, *Proposal, msig.Address, error) {
	var msg RejectProposalMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	_, proposal, voter, err := loadForVote(ctx, db, h.auth, h.wallets, h.proposals, msg.WalletID, msg.ProposalID)
	if err != nil {
		return nil, nil, nil, err
	}
	if proposal.HasRejected(voter) {
		return nil, nil, nil, errors.Wrapf(ErrAlreadyRejected, "signer %s", voter)
	}
	return &msg, proposal, voter, nil
}

// loadForVote runs the shared voting preconditions: the wallet must be
// active, the proposal pending and not expired, and the transaction
// signed by a wallet signer.
func loadForVote(ctx msig.Context, db msig.KVStore, auth x.Authenticator, wallets WalletBucket, proposals ProposalBucket, walletID []byte, proposalID uint64) (*WalletConfig, *Proposal, msig.Address, error) {
	wallet, err := wallets.GetWalletConfig(db, walletID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", walletID)
	}
	proposal, err := proposals.GetProposal(db, walletID, proposalID)
	if err != nil {
		return nil, nil, nil, err
	}
	if proposal.Status != StatusPending {
		return nil, nil, nil, errors.Wrapf(ErrProposalNotPending, "status %s", proposal.Status)
	}
	if msig.IsExpired(ctx, proposal.Expiration) {
		return nil, nil, nil, errors.Wrapf(ErrProposalExpired, "expired at %s", proposal.Expiration)
	}
	voter, err := signerAddress(ctx, auth, wallet)
	if err != nil {
		return nil, nil, nil, err
	}
	return wallet, proposal, voter, nil
}

// ExecuteProposalHandler dispatches the instructions of an approved
// proposal, metering declared amounts against the spending limit.
// Execution is open to any caller.
type ExecuteProposalHandler struct {
	wallets   WalletBucket
	proposals ProposalBucket
	executor  Executor
}

var _ msig.Handler = ExecuteProposalHandler{}

func (h ExecuteProposalHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: executeCost}, nil
}

func (h ExecuteProposalHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, proposal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	return dispatchProposal(ctx, db, h.executor, h.wallets, h.proposals, msg.WalletID, msg.ProposalID, wallet, proposal)
}

func (h ExecuteProposalHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*ExecuteProposalMsg, *WalletConfig, *Proposal, error) {
	var msg ExecuteProposalMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	proposal, err := h.proposals.GetProposal(db, msg.WalletID, msg.ProposalID)
	if err != nil {
		return nil, nil, nil, err
	}
	if proposal.Status != StatusApproved {
		return nil, nil, nil, errors.Wrapf(ErrProposalNotApproved, "status %s", proposal.Status)
	}
	if msig.IsExpired(ctx, proposal.Expiration) {
		return nil, nil, nil, errors.Wrapf(ErrProposalExpired, "expired at %s", proposal.Expiration)
	}
	return &msg, wallet, proposal, nil
}

// dispatchProposal meters all declared amounts, dispatches each
// instruction in order, and stamps the proposal executed. An overdraw
// aborts before any instruction runs. Individual instruction failures
// are logged and do not undo the execution.
func dispatchProposal(ctx msig.Context, db msig.KVStore, executor Executor, wallets WalletBucket, proposals ProposalBucket, walletID []byte, proposalID uint64, wallet *WalletConfig, proposal *Proposal) (*msig.DeliverResult, error) {
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	for i, in := range proposal.Instructions {
		if in.Amount == nil {
			continue
		}
		if err := wallet.ChargeSpending(now, *in.Amount); err != nil {
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
	}

	if executor != nil {
		execCtx := withWallet(ctx, walletID)
		logger := msig.GetLogger(ctx)
		for i, in := range proposal.Instructions {
			if err := executor.Execute(execCtx, db, in); err != nil {
				logger.Error("instruction failed",
					"wallet", wallet.Authority, "proposal", proposalID,
					"instruction", i, "err", err)
			}
		}
	}

	proposal.Status = StatusExecuted
	proposal.ExecutedAt = now
	if err := proposals.SaveProposal(db, walletID, proposalID, proposal); err != nil {
		return nil, err
	}
	if err := wallets.SaveWalletConfig(db, walletID, wallet); err != nil {
		return nil, err
	}

	return &msig.DeliverResult{
		Log: "proposal executed",
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: walletID},
			{Key: []byte(tagProposalID), Value: orm.EncodeSequence(int64(proposalID))},
		},
	}, nil
}

// UpdateSignersHandler rotates the signer set. It needs both a wallet
// signer and the wallet authority on the transaction.
type UpdateSignersHandler struct {
	auth    x.Authenticator
	wallets WalletBucket
}

var _ msig.Handler = UpdateSignersHandler{}

func (h UpdateSignersHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: updateCost}, nil
}

func (h UpdateSignersHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := wallet.UpdateSigners(msg.Signers, msg.Threshold); err != nil {
		return nil, err
	}
	if err := h.wallets.SaveWalletConfig(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
		},
	}, nil
}

func (h UpdateSignersHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*UpdateSignersMsg, *WalletConfig, error) {
	var msg UpdateSignersMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	if _, err := signerAddress(ctx, h.auth, wallet); err != nil {
		return nil, nil, err
	}
	if err := authorityCheck(ctx, h.auth, wallet); err != nil {
		return nil, nil, err
	}
	return &msg, wallet, nil
}

// SetSpendingLimitsHandler configures the spending limit of a wallet.
// Authority only. Setting a new limit starts a fresh metering window.
type SetSpendingLimitsHandler struct {
	auth    x.Authenticator
	wallets WalletBucket
}

var _ msig.Handler = SetSpendingLimitsHandler{}

func (h SetSpendingLimitsHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: updateCost}, nil
}

func (h SetSpendingLimitsHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	limit := msg.SpendingLimit
	wallet.SpendingLimit = &limit
	wallet.SpendingPeriod = msg.SpendingPeriod
	wallet.ResetSpending(now)

	if err := h.wallets.SaveWalletConfig(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
		},
	}, nil
}

func (h SetSpendingLimitsHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*SetSpendingLimitsMsg, *WalletConfig, error) {
	var msg SetSpendingLimitsMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	if err := authorityCheck(ctx, h.auth, wallet); err != nil {
		return nil, nil, err
	}
	return &msg, wallet, nil
}

// DelegateVoteHandler records a standing delegate for the sending
// signer. The delegation is informational, delegates cannot vote.
type DelegateVoteHandler struct {
	auth    x.Authenticator
	wallets WalletBucket
}

var _ msig.Handler = DelegateVoteHandler{}

func (h DelegateVoteHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: updateCost}, nil
}

func (h DelegateVoteHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, member, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	member.Delegate = msg.Delegate
	if err := h.wallets.SaveWalletConfig(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
		},
	}, nil
}

func (h DelegateVoteHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*DelegateVoteMsg, *WalletConfig, *Member, error) {
	var msg DelegateVoteMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	signer, err := signerAddress(ctx, h.auth, wallet)
	if err != nil {
		return nil, nil, nil, err
	}
	member := wallet.Member(signer)
	if member == nil {
		return nil, nil, nil, errors.Wrapf(ErrMemberNotFound, "signer %s", signer)
	}
	return &msg, wallet, member, nil
}

// EmergencyExecuteHandler dispatches authority supplied instructions
// immediately, outside of the proposal pipeline. No proposal record is
// created. Spending limits still apply.
type EmergencyExecuteHandler struct {
	auth     x.Authenticator
	wallets  WalletBucket
	executor Executor
}

var _ msig.Handler = EmergencyExecuteHandler{}

func (h EmergencyExecuteHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: executeCost}, nil
}

func (h EmergencyExecuteHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}

	for i, in := range msg.Instructions {
		if in.Amount == nil {
			continue
		}
		if err := wallet.ChargeSpending(now, *in.Amount); err != nil {
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
	}

	if h.executor != nil {
		execCtx := withWallet(ctx, msg.WalletID)
		logger := msig.GetLogger(ctx)
		for i, in := range msg.Instructions {
			if err := h.executor.Execute(execCtx, db, in); err != nil {
				logger.Error("emergency instruction failed",
					"wallet", wallet.Authority, "instruction", i, "err", err)
			}
		}
	}

	if err := h.wallets.SaveWalletConfig(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Log: "emergency executed",
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
		},
	}, nil
}

func (h EmergencyExecuteHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*EmergencyExecuteMsg, *WalletConfig, error) {
	var msg EmergencyExecuteMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	if err := authorityCheck(ctx, h.auth, wallet); err != nil {
		return nil, nil, err
	}
	return &msg, wallet, nil
}

// DeactivateWalletHandler permanently disables a wallet. Authority
// only.
type DeactivateWalletHandler struct {
	auth    x.Authenticator
	wallets WalletBucket
}

var _ msig.Handler = DeactivateWalletHandler{}

func (h DeactivateWalletHandler) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &msig.CheckResult{GasAllocated: updateCost}, nil
}

func (h DeactivateWalletHandler) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*msig.DeliverResult, error) {
	msg, wallet, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	wallet.Active = false
	if err := h.wallets.SaveWalletConfig(db, msg.WalletID, wallet); err != nil {
		return nil, err
	}
	return &msig.DeliverResult{
		Tags: []common.KVPair{
			{Key: []byte(tagWalletID), Value: msg.WalletID},
		},
	}, nil
}

func (h DeactivateWalletHandler) validate(ctx msig.Context, db msig.KVStore, tx msig.Tx) (*DeactivateWalletMsg, *WalletConfig, error) {
	var msg DeactivateWalletMsg
	if err := msig.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	wallet, err := h.wallets.GetWalletConfig(db, msg.WalletID)
	if err != nil {
		return nil, nil, err
	}
	if !wallet.Active {
		return nil, nil, errors.Wrapf(ErrWalletInactive, "wallet %X", msg.WalletID)
	}
	if err := authorityCheck(ctx, h.auth, wallet); err != nil {
		return nil, nil, err
	}
	return &msg, wallet, nil
}

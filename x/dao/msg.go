package dao

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/coin"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Path constants for all messages of this package.
const (
	pathCreateWallet      = "dao/create_wallet"
	pathAddProposal       = "dao/add_proposal"
	pathApproveProposal   = "dao/approve_proposal"
	pathRejectProposal    = "dao/reject_proposal"
	pathExecuteProposal   = "dao/execute_proposal"
	pathUpdateSigners     = "dao/update_signers"
	pathSetSpendingLimits = "dao/set_spending_limits"
	pathDelegateVote      = "dao/delegate_vote"
	pathEmergencyExecute  = "dao/emergency_execute"
	pathDeactivateWallet  = "dao/deactivate_wallet"
)

// CreateWalletMsg creates a new wallet owned by the given signers.
// The main signer of the transaction becomes the wallet authority.
type CreateWalletMsg struct {
	Signers         []msig.Address    `json:"signers"`
	Threshold       uint32            `json:"threshold"`
	ProposalTimeout msig.UnixDuration `json:"proposal_timeout"`
	SpendingLimit   *coin.Coin        `json:"spending_limit,omitempty"`
	SpendingPeriod  msig.UnixDuration `json:"spending_period,omitempty"`
}

var _ msig.Msg = (*CreateWalletMsg)(nil)

func (CreateWalletMsg) Path() string {
	return pathCreateWallet
}

func (m *CreateWalletMsg) Validate() error {
	if err := validateSigners(m.Signers, m.Threshold); err != nil {
		return err
	}
	if m.ProposalTimeout <= 0 {
		return errors.Wrap(ErrInvalidTimeout, "proposal timeout must be positive")
	}
	if m.SpendingLimit != nil {
		if err := m.SpendingLimit.Validate(); err != nil {
			return errors.Wrap(ErrInvalidSpendingLimit, err.Error())
		}
		if !m.SpendingLimit.IsPositive() {
			return errors.Wrap(ErrInvalidSpendingLimit, "must be positive")
		}
		if m.SpendingPeriod <= 0 {
			return errors.Wrap(ErrInvalidTimeout, "spending period must be positive")
		}
	}
	return nil
}

func (m *CreateWalletMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *CreateWalletMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// AddProposalMsg opens a new proposal on a wallet. A zero expiration
// defaults to the wallet proposal timeout from now.
type AddProposalMsg struct {
	WalletID     []byte            `json:"wallet_id"`
	Description  string            `json:"description"`
	Category     ProposalCategory  `json:"category"`
	Instructions []InstructionData `json:"instructions"`
	Expiration   msig.UnixTime     `json:"expiration,omitempty"`
}

var _ msig.Msg = (*AddProposalMsg)(nil)

func (AddProposalMsg) Path() string {
	return pathAddProposal
}

func (m *AddProposalMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if len(m.Description) > maxDescriptionLen {
		return errors.Wrapf(errors.ErrMsg, "description cannot exceed %d characters", maxDescriptionLen)
	}
	if err := m.Category.Validate(); err != nil {
		return err
	}
	if err := validateInstructions(m.Instructions); err != nil {
		return err
	}
	if err := m.Expiration.Validate(); err != nil {
		return errors.Wrap(ErrInvalidExpiration, err.Error())
	}
	return nil
}

func (m *AddProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *AddProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// ApproveProposalMsg records an approval vote of one wallet signer.
type ApproveProposalMsg struct {
	WalletID   []byte `json:"wallet_id"`
	ProposalID uint64 `json:"proposal_id"`
}

var _ msig.Msg = (*ApproveProposalMsg)(nil)

func (ApproveProposalMsg) Path() string {
	return pathApproveProposal
}

func (m *ApproveProposalMsg) Validate() error {
	return validateProposalRef(m.WalletID, m.ProposalID)
}

func (m *ApproveProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ApproveProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// RejectProposalMsg records a rejection vote of one wallet signer.
// Rejections are advisory and never change the proposal status.
type RejectProposalMsg struct {
	WalletID   []byte `json:"wallet_id"`
	ProposalID uint64 `json:"proposal_id"`
}

var _ msig.Msg = (*RejectProposalMsg)(nil)

func (RejectProposalMsg) Path() string {
	return pathRejectProposal
}

func (m *RejectProposalMsg) Validate() error {
	return validateProposalRef(m.WalletID, m.ProposalID)
}

func (m *RejectProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *RejectProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// ExecuteProposalMsg dispatches the instructions of an approved
// proposal.
type ExecuteProposalMsg struct {
	WalletID   []byte `json:"wallet_id"`
	ProposalID uint64 `json:"proposal_id"`
}

var _ msig.Msg = (*ExecuteProposalMsg)(nil)

func (ExecuteProposalMsg) Path() string {
	return pathExecuteProposal
}

func (m *ExecuteProposalMsg) Validate() error {
	return validateProposalRef(m.WalletID, m.ProposalID)
}

func (m *ExecuteProposalMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *ExecuteProposalMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// UpdateSignersMsg replaces the signer set and threshold of a wallet.
// It must be sent by a wallet signer and authorized by the authority.
type UpdateSignersMsg struct {
	WalletID  []byte         `json:"wallet_id"`
	Signers   []msig.Address `json:"signers"`
	Threshold uint32         `json:"threshold"`
}

var _ msig.Msg = (*UpdateSignersMsg)(nil)

func (UpdateSignersMsg) Path() string {
	return pathUpdateSigners
}

func (m *UpdateSignersMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	return validateSigners(m.Signers, m.Threshold)
}

func (m *UpdateSignersMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *UpdateSignersMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// SetSpendingLimitsMsg configures the wallet spending limit and
// metering period, resetting the current accumulator.
type SetSpendingLimitsMsg struct {
	WalletID       []byte            `json:"wallet_id"`
	SpendingLimit  coin.Coin         `json:"spending_limit"`
	SpendingPeriod msig.UnixDuration `json:"spending_period"`
}

var _ msig.Msg = (*SetSpendingLimitsMsg)(nil)

func (SetSpendingLimitsMsg) Path() string {
	return pathSetSpendingLimits
}

func (m *SetSpendingLimitsMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if err := m.SpendingLimit.Validate(); err != nil {
		return errors.Wrap(ErrInvalidSpendingLimit, err.Error())
	}
	if !m.SpendingLimit.IsPositive() {
		return errors.Wrap(ErrInvalidSpendingLimit, "must be positive")
	}
	if m.SpendingPeriod <= 0 {
		return errors.Wrap(ErrInvalidTimeout, "spending period must be positive")
	}
	return nil
}

func (m *SetSpendingLimitsMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *SetSpendingLimitsMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// DelegateVoteMsg records a standing delegate for the sending signer.
// Clearing is done by sending an empty delegate.
type DelegateVoteMsg struct {
	WalletID []byte       `json:"wallet_id"`
	Delegate msig.Address `json:"delegate,omitempty"`
}

var _ msig.Msg = (*DelegateVoteMsg)(nil)

func (DelegateVoteMsg) Path() string {
	return pathDelegateVote
}

func (m *DelegateVoteMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if len(m.Delegate) != 0 {
		if err := m.Delegate.Validate(); err != nil {
			return errors.Wrap(err, "delegate")
		}
	}
	return nil
}

func (m *DelegateVoteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *DelegateVoteMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// EmergencyExecuteMsg dispatches instructions immediately, outside of
// the proposal pipeline and without a proposal record. Authority only.
type EmergencyExecuteMsg struct {
	WalletID     []byte            `json:"wallet_id"`
	Instructions []InstructionData `json:"instructions"`
}

var _ msig.Msg = (*EmergencyExecuteMsg)(nil)

func (EmergencyExecuteMsg) Path() string {
	return pathEmergencyExecute
}

func (m *EmergencyExecuteMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	return validateInstructions(m.Instructions)
}

func (m *EmergencyExecuteMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *EmergencyExecuteMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

// DeactivateWalletMsg permanently disables a wallet. Authority only.
type DeactivateWalletMsg struct {
	WalletID []byte `json:"wallet_id"`
}

var _ msig.Msg = (*DeactivateWalletMsg)(nil)

func (DeactivateWalletMsg) Path() string {
	return pathDeactivateWallet
}

func (m *DeactivateWalletMsg) Validate() error {
	if len(m.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	return nil
}

func (m *DeactivateWalletMsg) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(m)
}

func (m *DeactivateWalletMsg) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, m)
}

func validateProposalRef(walletID []byte, proposalID uint64) error {
	if len(walletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if proposalID == 0 {
		return errors.Wrap(errors.ErrEmpty, "proposal id")
	}
	return nil
}

func validateInstructions(instructions []InstructionData) error {
	if len(instructions) == 0 {
		return errors.Wrap(errors.ErrEmpty, "instructions")
	}
	if len(instructions) > maxInstructions {
		return errors.Wrapf(errors.ErrMsg, "cannot have more than %d instructions", maxInstructions)
	}
	for i, in := range instructions {
		if err := in.Validate(); err != nil {
			return errors.Wrapf(err, "instruction %d", i)
		}
	}
	return nil
}

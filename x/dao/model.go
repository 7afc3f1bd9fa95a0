package dao

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/coin"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/orm"
)

const (
	// maxSigners bounds the signer set of a single wallet.
	maxSigners = 10
	// maxDescriptionLen bounds the proposal description, in bytes.
	maxDescriptionLen = 200
	// maxInstructions bounds the instruction list of a proposal.
	maxInstructions = 10
	// maxInstructionMetas bounds the meta list of one instruction.
	maxInstructionMetas = 10
	// maxPayloadSize bounds the opaque payload of one instruction,
	// in bytes.
	maxPayloadSize = 256
)

// Role describes the standing of a member within a wallet.
type Role int32

const (
	// RoleMember is a regular voting member.
	RoleMember Role = 0
	// RoleTreasurer marks a member trusted with treasury operations.
	RoleTreasurer Role = 1
	// RoleAdmin marks a member with administrative standing.
	RoleAdmin Role = 2
)

// Validate returns an error for unknown role values.
func (r Role) Validate() error {
	switch r {
	case RoleMember, RoleTreasurer, RoleAdmin:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "unknown role: %d", r)
	}
}

func (r Role) String() string {
	switch r {
	case RoleMember:
		return "member"
	case RoleTreasurer:
		return "treasurer"
	case RoleAdmin:
		return "admin"
	default:
		return "invalid"
	}
}

// Member is the per-signer record of a wallet: the role, an optional
// standing delegate, and an active flag.
type Member struct {
	Address  msig.Address `json:"address"`
	Role     Role         `json:"role"`
	Delegate msig.Address `json:"delegate,omitempty"`
	Active   bool         `json:"active"`
}

// Validate enforces address and role constraints.
func (m Member) Validate() error {
	if err := m.Address.Validate(); err != nil {
		return errors.Wrap(err, "address")
	}
	if err := m.Role.Validate(); err != nil {
		return errors.Wrap(err, "role")
	}
	if len(m.Delegate) != 0 {
		if err := m.Delegate.Validate(); err != nil {
			return errors.Wrap(err, "delegate")
		}
	}
	return nil
}

// WalletConfig is the persistent state of one multi-party wallet.
type WalletConfig struct {
	// Authority is the privileged address that may rotate signers,
	// configure limits, and run emergency executions.
	Authority msig.Address `json:"authority"`
	// Signers are the addresses allowed to propose and vote.
	Signers []msig.Address `json:"signers"`
	// Threshold is the number of distinct approvals a regular
	// proposal needs.
	Threshold uint32 `json:"threshold"`
	// ProposalTimeout is the default proposal lifetime, used when a
	// proposal does not carry an explicit expiration.
	ProposalTimeout msig.UnixDuration `json:"proposal_timeout"`
	// SpendingLimit caps the amounts executed within one spending
	// period. Unset means unmetered.
	SpendingLimit *coin.Coin `json:"spending_limit,omitempty"`
	// SpendingUsed accumulates the amounts executed in the current
	// period.
	SpendingUsed *coin.Coin `json:"spending_used,omitempty"`
	// SpendingPeriod is the length of one metering window.
	SpendingPeriod msig.UnixDuration `json:"spending_period,omitempty"`
	// LastSpendingReset is when the current metering window started.
	LastSpendingReset msig.UnixTime `json:"last_spending_reset,omitempty"`
	// Active is cleared when the wallet is deactivated. An inactive
	// wallet refuses all operations.
	Active bool `json:"active"`
	// ProposalCount is the number of proposals created so far, used
	// to assign proposal ids.
	ProposalCount uint64 `json:"proposal_count"`
	// Members carries per-signer metadata, aligned with Signers.
	Members []Member `json:"members"`
}

var _ orm.CloneableData = (*WalletConfig)(nil)

func (w *WalletConfig) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(w)
}

func (w *WalletConfig) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, w)
}

// Validate enforces the wallet invariants.
func (w *WalletConfig) Validate() error {
	if err := w.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if err := validateSigners(w.Signers, w.Threshold); err != nil {
		return err
	}
	if w.ProposalTimeout <= 0 {
		return errors.Wrap(ErrInvalidTimeout, "proposal timeout must be positive")
	}
	if w.SpendingLimit != nil {
		if err := w.SpendingLimit.Validate(); err != nil {
			return errors.Wrap(ErrInvalidSpendingLimit, err.Error())
		}
		if !w.SpendingLimit.IsPositive() {
			return errors.Wrap(ErrInvalidSpendingLimit, "must be positive")
		}
		if w.SpendingPeriod <= 0 {
			return errors.Wrap(ErrInvalidTimeout, "spending period must be positive")
		}
	}
	if len(w.Members) != len(w.Signers) {
		return errors.Wrap(errors.ErrState, "members out of sync with signers")
	}
	for i, m := range w.Members {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "member %d", i)
		}
		if !m.Address.Equals(w.Signers[i]) {
			return errors.Wrapf(errors.ErrState, "member %d out of sync with signers", i)
		}
	}
	return nil
}

func validateSigners(signers []msig.Address, threshold uint32) error {
	if len(signers) == 0 {
		return errors.Wrap(errors.ErrMsg, "missing signers")
	}
	if len(signers) > maxSigners {
		return errors.Wrapf(errors.ErrMsg, "cannot have more than %d signers", maxSigners)
	}
	for i, s := range signers {
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "signer %d", i)
		}
		for _, prev := range signers[:i] {
			if s.Equals(prev) {
				return errors.Wrapf(errors.ErrDuplicate, "signer %s", s)
			}
		}
	}
	if threshold < 1 || int(threshold) > len(signers) {
		return errors.Wrapf(ErrInvalidThreshold, "%d of %d signers", threshold, len(signers))
	}
	return nil
}

// Copy produces a deep copy of the wallet.
func (w *WalletConfig) Copy() orm.CloneableData {
	cpy := &WalletConfig{
		Authority:         w.Authority.Clone(),
		Signers:           make([]msig.Address, len(w.Signers)),
		Threshold:         w.Threshold,
		ProposalTimeout:   w.ProposalTimeout,
		SpendingLimit:     w.SpendingLimit.Clone(),
		SpendingUsed:      w.SpendingUsed.Clone(),
		SpendingPeriod:    w.SpendingPeriod,
		LastSpendingReset: w.LastSpendingReset,
		Active:            w.Active,
		ProposalCount:     w.ProposalCount,
		Members:           make([]Member, len(w.Members)),
	}
	for i, s := range w.Signers {
		cpy.Signers[i] = s.Clone()
	}
	for i, m := range w.Members {
		cpy.Members[i] = Member{
			Address:  m.Address.Clone(),
			Role:     m.Role,
			Delegate: m.Delegate.Clone(),
			Active:   m.Active,
		}
	}
	return cpy
}

// IsSigner returns true if the address belongs to the signer set.
func (w *WalletConfig) IsSigner(addr msig.Address) bool {
	for _, s := range w.Signers {
		if s.Equals(addr) {
			return true
		}
	}
	return false
}

// Member returns the member record for the address, or nil when the
// address is not a member.
func (w *WalletConfig) Member(addr msig.Address) *Member {
	for i := range w.Members {
		if w.Members[i].Address.Equals(addr) {
			return &w.Members[i]
		}
	}
	return nil
}

// UpdateSigners replaces the signer set and threshold, rebuilding the
// member list. Records of surviving addresses keep their role and
// delegate, new addresses join as regular members.
func (w *WalletConfig) UpdateSigners(signers []msig.Address, threshold uint32) error {
	if err := validateSigners(signers, threshold); err != nil {
		return err
	}
	members := make([]Member, len(signers))
	for i, s := range signers {
		if old := w.Member(s); old != nil {
			members[i] = *old
		} else {
			members[i] = Member{Address: s, Role: RoleMember, Active: true}
		}
	}
	w.Signers = signers
	w.Threshold = threshold
	w.Members = members
	return nil
}

// ProposalCategory decides how many approvals a proposal needs.
type ProposalCategory int32

const (
	// CategoryRegular needs exactly the wallet threshold.
	CategoryRegular ProposalCategory = 0
	// CategoryAdmin needs one approval more than the threshold.
	CategoryAdmin ProposalCategory = 1
	// CategoryEmergency needs one approval less than the threshold,
	// but never less than one.
	CategoryEmergency ProposalCategory = 2
)

// Validate returns an error for unknown category values.
func (c ProposalCategory) Validate() error {
	switch c {
	case CategoryRegular, CategoryAdmin, CategoryEmergency:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "unknown category: %d", c)
	}
}

func (c ProposalCategory) String() string {
	switch c {
	case CategoryRegular:
		return "regular"
	case CategoryAdmin:
		return "admin"
	case CategoryEmergency:
		return "emergency"
	default:
		return "invalid"
	}
}

// requiredApprovals returns how many distinct approvals a proposal of
// the given category needs with the given wallet threshold.
func requiredApprovals(c ProposalCategory, threshold uint32) uint32 {
	switch c {
	case CategoryAdmin:
		return threshold + 1
	case CategoryEmergency:
		if threshold <= 1 {
			return 1
		}
		return threshold - 1
	default:
		return threshold
	}
}

// ProposalStatus is the lifecycle state of a proposal.
type ProposalStatus int32

const (
	// StatusPending means the proposal is open for voting.
	StatusPending ProposalStatus = 0
	// StatusApproved means enough approvals were collected.
	StatusApproved ProposalStatus = 1
	// StatusRejected is a terminal state set outside the regular
	// voting flow.
	StatusRejected ProposalStatus = 2
	// StatusExecuted means the instructions were dispatched.
	StatusExecuted ProposalStatus = 3
	// StatusExpired means the expiration passed before execution.
	StatusExpired ProposalStatus = 4
)

// Validate returns an error for unknown status values.
func (s ProposalStatus) Validate() error {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExecuted, StatusExpired:
		return nil
	default:
		return errors.Wrapf(errors.ErrState, "unknown status: %d", s)
	}
}

func (s ProposalStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusExecuted:
		return "executed"
	case StatusExpired:
		return "expired"
	default:
		return "invalid"
	}
}

// InstructionMeta is one account or resource touched by an
// instruction.
type InstructionMeta struct {
	Address  msig.Address `json:"address"`
	Signer   bool         `json:"signer"`
	Writable bool         `json:"writable"`
}

// InstructionData is a single action of a proposal: an opaque payload
// for a target, plus an optional amount metered against the wallet
// spending limit.
type InstructionData struct {
	// Target identifies the executor that handles this instruction.
	Target msig.Address `json:"target"`
	// Metas list the resources the instruction touches.
	Metas []InstructionMeta `json:"metas,omitempty"`
	// Payload is an opaque argument blob passed to the executor.
	Payload []byte `json:"payload,omitempty"`
	// Amount, if set, is charged against the wallet spending limit
	// before the instruction is dispatched.
	Amount *coin.Coin `json:"amount,omitempty"`
}

// Validate enforces per-instruction bounds.
func (in InstructionData) Validate() error {
	if err := in.Target.Validate(); err != nil {
		return errors.Wrap(err, "target")
	}
	if len(in.Metas) > maxInstructionMetas {
		return errors.Wrapf(errors.ErrMsg, "cannot have more than %d metas", maxInstructionMetas)
	}
	for i, m := range in.Metas {
		if err := m.Address.Validate(); err != nil {
			return errors.Wrapf(err, "meta %d", i)
		}
	}
	if len(in.Payload) > maxPayloadSize {
		return errors.Wrapf(errors.ErrMsg, "payload cannot exceed %d bytes", maxPayloadSize)
	}
	if in.Amount != nil {
		if err := in.Amount.Validate(); err != nil {
			return errors.Wrap(err, "amount")
		}
		if !in.Amount.IsNonNegative() {
			return errors.Wrap(errors.ErrAmount, "amount must not be negative")
		}
	}
	return nil
}

func copyInstruction(in InstructionData) InstructionData {
	cpy := InstructionData{
		Target: in.Target.Clone(),
		Amount: in.Amount.Clone(),
	}
	if len(in.Metas) > 0 {
		cpy.Metas = make([]InstructionMeta, len(in.Metas))
		for i, m := range in.Metas {
			cpy.Metas[i] = InstructionMeta{
				Address:  m.Address.Clone(),
				Signer:   m.Signer,
				Writable: m.Writable,
			}
		}
	}
	if len(in.Payload) > 0 {
		cpy.Payload = append([]byte(nil), in.Payload...)
	}
	return cpy
}

// Proposal is one proposed action of a wallet, moving through the
// pending, approved, executed lifecycle.
type Proposal struct {
	// WalletID references the wallet this proposal belongs to.
	WalletID []byte `json:"wallet_id"`
	// Proposer is the signer that created the proposal.
	Proposer msig.Address `json:"proposer"`
	// Description is a human readable summary.
	Description string `json:"description"`
	// Category decides the approval requirement.
	Category ProposalCategory `json:"category"`
	// Instructions are dispatched in order on execution.
	Instructions []InstructionData `json:"instructions"`
	// Expiration is when the proposal stops accepting votes.
	Expiration msig.UnixTime `json:"expiration"`
	// Status is the current lifecycle state.
	Status ProposalStatus `json:"status"`
	// Approvals are the distinct signers that approved.
	Approvals []msig.Address `json:"approvals,omitempty"`
	// Rejections are the distinct signers that rejected. Rejections
	// are advisory and never change the status.
	Rejections []msig.Address `json:"rejections,omitempty"`
	// CreatedAt is when the proposal was added.
	CreatedAt msig.UnixTime `json:"created_at"`
	// ExecutedAt is set when the proposal is executed.
	ExecutedAt msig.UnixTime `json:"executed_at,omitempty"`
}

var _ orm.CloneableData = (*Proposal)(nil)

func (p *Proposal) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(p)
}

func (p *Proposal) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, p)
}

// Validate enforces the proposal invariants.
func (p *Proposal) Validate() error {
	if len(p.WalletID) == 0 {
		return errors.Wrap(errors.ErrEmpty, "wallet id")
	}
	if err := p.Proposer.Validate(); err != nil {
		return errors.Wrap(err, "proposer")
	}
	if len(p.Description) > maxDescriptionLen {
		return errors.Wrapf(errors.ErrMsg, "description cannot exceed %d characters", maxDescriptionLen)
	}
	if err := p.Category.Validate(); err != nil {
		return err
	}
	if len(p.Instructions) == 0 {
		return errors.Wrap(errors.ErrEmpty, "instructions")
	}
	if len(p.Instructions) > maxInstructions {
		return errors.Wrapf(errors.ErrMsg, "cannot have more than %d instructions", maxInstructions)
	}
	for i, in := range p.Instructions {
		if err := in.Validate(); err != nil {
			return errors.Wrapf(err, "instruction %d", i)
		}
	}
	if p.Expiration <= 0 {
		return errors.Wrap(ErrInvalidExpiration, "must be set")
	}
	if err := p.Status.Validate(); err != nil {
		return err
	}
	if err := p.CreatedAt.Validate(); err != nil {
		return errors.Wrap(err, "created at")
	}
	return nil
}

// Copy produces a deep copy of the proposal.
func (p *Proposal) Copy() orm.CloneableData {
	cpy := &Proposal{
		WalletID:    append([]byte(nil), p.WalletID...),
		Proposer:    p.Proposer.Clone(),
		Description: p.Description,
		Category:    p.Category,
		Expiration:  p.Expiration,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		ExecutedAt:  p.ExecutedAt,
	}
	cpy.Instructions = make([]InstructionData, len(p.Instructions))
	for i, in := range p.Instructions {
		cpy.Instructions[i] = copyInstruction(in)
	}
	for _, a := range p.Approvals {
		cpy.Approvals = append(cpy.Approvals, a.Clone())
	}
	for _, r := range p.Rejections {
		cpy.Rejections = append(cpy.Rejections, r.Clone())
	}
	return cpy
}

// HasApproved returns true if the address already approved.
func (p *Proposal) HasApproved(addr msig.Address) bool {
	for _, a := range p.Approvals {
		if a.Equals(addr) {
			return true
		}
	}
	return false
}

// HasRejected returns true if the address already rejected.
func (p *Proposal) HasRejected(addr msig.Address) bool {
	for _, r := range p.Rejections {
		if r.Equals(addr) {
			return true
		}
	}
	return false
}

// Approve records an approval vote and promotes the proposal to
// approved once the category requirement is met.
func (p *Proposal) Approve(voter msig.Address, threshold uint32) error {
	if p.HasApproved(voter) {
		return errors.Wrapf(ErrAlreadyApproved, "signer %s", voter)
	}
	p.Approvals = append(p.Approvals, voter)
	if uint32(len(p.Approvals)) >= requiredApprovals(p.Category, threshold) {
		p.Status = StatusApproved
	}
	return nil
}

// Reject records a rejection vote. Rejections never change the
// proposal status.
func (p *Proposal) Reject(voter msig.Address) error {
	if p.HasRejected(voter) {
		return errors.Wrapf(ErrAlreadyRejected, "signer %s", voter)
	}
	p.Rejections = append(p.Rejections, voter)
	return nil
}

package dao

import (
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

var (
	// ErrInvalidThreshold is returned when a threshold does not fit the
	// signer set it guards.
	ErrInvalidThreshold = errors.Register(1200, "invalid threshold")

	// ErrInvalidTimeout is returned for a non-positive proposal timeout
	// or spending period.
	ErrInvalidTimeout = errors.Register(1201, "invalid timeout")

	// ErrInvalidSpendingLimit is returned for a malformed or negative
	// spending limit.
	ErrInvalidSpendingLimit = errors.Register(1202, "invalid spending limit")

	// ErrInvalidExpiration is returned when a proposal expiration is not
	// in the future.
	ErrInvalidExpiration = errors.Register(1203, "invalid expiration")

	// ErrWalletInactive is returned for any operation on a deactivated
	// wallet.
	ErrWalletInactive = errors.Register(1204, "wallet inactive")

	// ErrProposalNotPending is returned when voting on a proposal that
	// already left the pending state.
	ErrProposalNotPending = errors.Register(1205, "proposal not pending")

	// ErrProposalNotApproved is returned when executing a proposal that
	// has not collected enough approvals.
	ErrProposalNotApproved = errors.Register(1206, "proposal not approved")

	// ErrProposalExpired is returned when acting on a proposal past its
	// expiration time.
	ErrProposalExpired = errors.Register(1207, "proposal expired")

	// ErrAlreadyApproved is returned when a signer approves the same
	// proposal twice.
	ErrAlreadyApproved = errors.Register(1208, "already approved")

	// ErrAlreadyRejected is returned when a signer rejects the same
	// proposal twice.
	ErrAlreadyRejected = errors.Register(1209, "already rejected")

	// ErrMemberNotFound is returned when an operation references a
	// member that is not part of the wallet.
	ErrMemberNotFound = errors.Register(1210, "member not found")

	// ErrSpendingLimitExceeded is returned when an execution would
	// overdraw the spending limit for the current period.
	ErrSpendingLimitExceeded = errors.Register(1211, "spending limit exceeded")
)

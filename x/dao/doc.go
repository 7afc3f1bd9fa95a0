/*
Package dao implements a multi-party authorization engine.

A wallet is owned by a set of signers and guarded by an approval
threshold. Any signer may propose an action as a list of instructions.
Other signers vote on the proposal, and once enough distinct approvals
are collected for the proposal category it can be executed. Execution
dispatches each instruction to a registered executor, metering any
declared amounts against a periodic spending limit.

The wallet authority is a separate privileged address that can rotate
the signer set, configure spending limits, deactivate the wallet, and
bypass the voting pipeline entirely with an emergency execution.

Signers can record a standing delegate for their vote. The delegation
is bookkeeping only: votes cast by a delegate on behalf of a signer are
not accepted.
*/
package dao

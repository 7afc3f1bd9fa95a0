package utils

import (
	"github.com/tendermint/tendermint/libs/common"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// ActionKey is the tag set by ActionTagger on every delivered message.
const ActionKey = "action"

// ActionTagger is a decorator that adds an "action" tag with the
// message path to every delivered transaction, so clients can
// subscribe to message types they care about.
type ActionTagger struct{}

var _ msig.Decorator = ActionTagger{}

// NewActionTagger creates an ActionTagger decorator
func NewActionTagger() ActionTagger {
	return ActionTagger{}
}

// Check just passes the request along
func (ActionTagger) Check(ctx msig.Context, store msig.KVStore, tx msig.Tx, next msig.Checker) (*msig.CheckResult, error) {
	return next.Check(ctx, store, tx)
}

// Deliver appends a tag on the result if there is a success.
func (ActionTagger) Deliver(ctx msig.Context, store msig.KVStore, tx msig.Tx, next msig.Deliverer) (*msig.DeliverResult, error) {
	res, err := next.Deliver(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	tag := common.KVPair{
		Key:   []byte(ActionKey),
		Value: []byte(msg.Path()),
	}
	res.Tags = append(res.Tags, tag)
	return res, nil
}

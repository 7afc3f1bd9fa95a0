package utils

import (
	"context"
	"testing"

	"github.com/tendermint/tendermint/libs/common"

	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest/assert"
	"github.com/vortex-hue/multisig-dao-wallet/store"
)

func TestActionTagger(t *testing.T) {
	tx := &msigtest.Tx{Msg: &msigtest.Msg{RoutePath: "dao/add_proposal"}}

	t.Run("tags successful deliveries", func(t *testing.T) {
		h := &msigtest.Handler{}
		res, err := NewActionTagger().Deliver(context.Background(), store.MemStore(), tx, h)
		assert.Nil(t, err)
		assert.Equal(t, 1, len(res.Tags))
		assert.Equal(t, ActionKey, string(res.Tags[0].Key))
		assert.Equal(t, "dao/add_proposal", string(res.Tags[0].Value))
	})

	t.Run("check does not tag", func(t *testing.T) {
		h := &msigtest.Handler{}
		res, err := NewActionTagger().Check(context.Background(), store.MemStore(), tx, h)
		assert.Nil(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, 1, h.CheckCallCount())
	})

	t.Run("errors pass through untouched", func(t *testing.T) {
		h := &msigtest.Handler{DeliverErr: errors.ErrUnauthorized}
		_, err := NewActionTagger().Deliver(context.Background(), store.MemStore(), tx, h)
		assert.IsErr(t, errors.ErrUnauthorized, err)
	})
}

func TestActionTaggerAppends(t *testing.T) {
	// existing tags set by inner handlers stay in place
	h := &msigtest.Handler{}
	h.DeliverResult.Tags = append(h.DeliverResult.Tags, kvPair("proposal-id", "1"))

	tx := &msigtest.Tx{Msg: &msigtest.Msg{RoutePath: "dao/approve_proposal"}}
	res, err := NewActionTagger().Deliver(context.Background(), store.MemStore(), tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res.Tags))
	assert.Equal(t, "proposal-id", string(res.Tags[0].Key))
	assert.Equal(t, ActionKey, string(res.Tags[1].Key))
}

func kvPair(k, v string) common.KVPair {
	return common.KVPair{Key: []byte(k), Value: []byte(v)}
}

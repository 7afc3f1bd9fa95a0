package app

import (
	"context"
	"testing"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingHandler struct {
	called int
}

var _ msig.Handler = (*countingHandler)(nil)

func (h *countingHandler) Check(msig.Context, msig.KVStore, msig.Tx) (*msig.CheckResult, error) {
	h.called++
	return &msig.CheckResult{}, nil
}

func (h *countingHandler) Deliver(msig.Context, msig.KVStore, msig.Tx) (*msig.DeliverResult, error) {
	h.called++
	return &msig.DeliverResult{}, nil
}

type routedMsg struct {
	path string
}

var _ msig.Msg = routedMsg{}

func (m routedMsg) Path() string              { return m.path }
func (m routedMsg) Validate() error           { return nil }
func (m routedMsg) Marshal() ([]byte, error)  { return nil, nil }
func (m routedMsg) Unmarshal(bz []byte) error { return nil }

type routedTx struct {
	msg msig.Msg
}

var _ msig.Tx = routedTx{}

func (tx routedTx) GetMsg() (msig.Msg, error) { return tx.msg, nil }
func (tx routedTx) Marshal() ([]byte, error)  { return nil, nil }
func (tx routedTx) Unmarshal(bz []byte) error { return nil }

func TestRouterDispatch(t *testing.T) {
	r := NewRouter()
	h := new(countingHandler)
	r.Handle("test/good", h)

	ctx := context.Background()
	db := store.MemStore()

	_, err := r.Check(ctx, db, routedTx{msg: routedMsg{path: "test/good"}})
	require.NoError(t, err)
	_, err = r.Deliver(ctx, db, routedTx{msg: routedMsg{path: "test/good"}})
	require.NoError(t, err)
	assert.Equal(t, 2, h.called)

	_, err = r.Check(ctx, db, routedTx{msg: routedMsg{path: "test/missing"}})
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Deliver(ctx, db, routedTx{msg: routedMsg{path: "test/missing"}})
	assert.True(t, errors.ErrNotFound.Is(err))
	assert.Equal(t, 2, h.called)
}

func TestRouterRegistration(t *testing.T) {
	r := NewRouter()
	r.Handle("test/good", new(countingHandler))

	assert.Panics(t, func() { r.Handle("test/good", new(countingHandler)) })
	assert.Panics(t, func() { r.Handle("no spaces allowed", new(countingHandler)) })
}

type tagDecorator struct{}

var _ msig.Decorator = tagDecorator{}

func (tagDecorator) Check(ctx msig.Context, db msig.KVStore, tx msig.Tx, next msig.Checker) (*msig.CheckResult, error) {
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Log += "*"
	return res, nil
}

func (tagDecorator) Deliver(ctx msig.Context, db msig.KVStore, tx msig.Tx, next msig.Deliverer) (*msig.DeliverResult, error) {
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	res.Log += "*"
	return res, nil
}

func TestChainDecorators(t *testing.T) {
	h := ChainDecorators(tagDecorator{}, tagDecorator{}).
		Chain(tagDecorator{}).
		WithHandler(new(countingHandler))

	res, err := h.Check(context.Background(), store.MemStore(), routedTx{msg: routedMsg{path: "test/good"}})
	require.NoError(t, err)
	assert.Equal(t, "***", res.Log)
}

package dao

import (
	"context"
	"testing"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest"
	"github.com/vortex-hue/multisig-dao-wallet/msigtest/assert"
	"github.com/vortex-hue/multisig-dao-wallet/store"
)

func TestExecutorRegistry(t *testing.T) {
	target := msigtest.NewCondition().Address()
	other := msigtest.NewCondition().Address()

	var got []byte
	reg := NewExecutorRegistry()
	reg.Register(target, ExecutorFunc(func(ctx msig.Context, db msig.KVStore, in InstructionData) error {
		got = in.Payload
		return nil
	}))

	err := reg.Execute(context.Background(), store.MemStore(), InstructionData{
		Target:  target,
		Payload: []byte("payload"),
	})
	assert.Nil(t, err)
	assert.Equal(t, []byte("payload"), got)

	err = reg.Execute(context.Background(), store.MemStore(), InstructionData{Target: other})
	assert.IsErr(t, errors.ErrNotFound, err)

	assert.Panics(t, func() {
		reg.Register(target, ExecutorFunc(func(msig.Context, msig.KVStore, InstructionData) error {
			return nil
		}))
	})
}

func TestExecutionAuthenticatesWallet(t *testing.T) {
	e := newEnv(t)
	walletAddr := WalletCondition(e.walletID).Address()

	target := msigtest.NewCondition().Address()
	var sawWallet bool
	reg := NewExecutorRegistry()
	reg.Register(target, ExecutorFunc(func(ctx msig.Context, db msig.KVStore, in InstructionData) error {
		sawWallet = Authenticate{}.HasAddress(ctx, walletAddr)
		return nil
	}))
	// run the handler directly with the registry as executor
	h := EmergencyExecuteHandler{auth: testAuth, wallets: NewWalletBucket(), executor: reg}

	ctx := e.ctx(1100, e.authority)
	_, err := h.Deliver(ctx, e.db, &msigtest.Tx{Msg: &EmergencyExecuteMsg{
		WalletID:     e.walletID,
		Instructions: []InstructionData{{Target: target}},
	}})
	assert.Nil(t, err)
	assert.Equal(t, true, sawWallet)

	// outside of an execution the wallet condition is absent
	assert.Equal(t, false, Authenticate{}.HasAddress(context.Background(), walletAddr))
	assert.Equal(t, 0, len(Authenticate{}.GetConditions(context.Background())))
}

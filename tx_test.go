package msig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

type pingMsg struct {
	Seen bool
}

var _ Msg = (*pingMsg)(nil)

func (*pingMsg) Path() string             { return "test/ping" }
func (*pingMsg) Validate() error          { return nil }
func (*pingMsg) Marshal() ([]byte, error) { return nil, nil }
func (*pingMsg) Unmarshal([]byte) error   { return nil }

type pongMsg struct{}

var _ Msg = (*pongMsg)(nil)

func (*pongMsg) Path() string             { return "test/pong" }
func (*pongMsg) Validate() error          { return errors.ErrMsg }
func (*pongMsg) Marshal() ([]byte, error) { return nil, nil }
func (*pongMsg) Unmarshal([]byte) error   { return nil }

type msgTx struct {
	msg Msg
	err error
}

var _ Tx = (*msgTx)(nil)

func (tx *msgTx) GetMsg() (Msg, error)     { return tx.msg, tx.err }
func (tx *msgTx) Marshal() ([]byte, error) { return nil, nil }
func (tx *msgTx) Unmarshal([]byte) error   { return nil }

func TestLoadMsg(t *testing.T) {
	var dest pingMsg
	err := LoadMsg(&msgTx{msg: &pingMsg{Seen: true}}, &dest)
	require.NoError(t, err)
	assert.True(t, dest.Seen)
}

func TestLoadMsgWrongType(t *testing.T) {
	var dest pongMsg
	err := LoadMsg(&msgTx{msg: &pingMsg{}}, &dest)
	assert.True(t, errors.ErrType.Is(err))
}

func TestLoadMsgInvalidMessage(t *testing.T) {
	var dest pongMsg
	err := LoadMsg(&msgTx{msg: &pongMsg{}}, &dest)
	assert.True(t, errors.ErrMsg.Is(err))
}

func TestLoadMsgTxFailure(t *testing.T) {
	var dest pingMsg
	err := LoadMsg(&msgTx{err: errors.ErrState}, &dest)
	assert.True(t, errors.ErrState.Is(err))
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/ping", GetPath(&msgTx{msg: &pingMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&msgTx{err: errors.ErrState}))
}

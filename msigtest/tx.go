package msigtest

import (
	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Tx is a mock implementation of the transaction interface, wrapping
// a single message.
type Tx struct {
	// Msg is the message that this transaction is carrying.
	Msg msig.Msg
	// Err, if set, is returned by GetMsg instead of the message.
	Err error
}

var _ msig.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (msig.Msg, error) {
	if tx.Err != nil {
		return nil, tx.Err
	}
	return tx.Msg, nil
}

func (tx *Tx) Marshal() ([]byte, error) {
	return nil, errors.Wrap(errors.ErrHuman, "marshal not implemented in mock")
}

func (tx *Tx) Unmarshal([]byte) error {
	return errors.Wrap(errors.ErrHuman, "unmarshal not implemented in mock")
}

// Msg is a mock implementation of the message interface.
type Msg struct {
	// RoutePath is returned by the Path method.
	RoutePath string
	// Serialized is returned by Marshal.
	Serialized []byte
	// Err, if set, is returned by both Validate and Marshal.
	Err error
}

var _ msig.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

func (m *Msg) Marshal() ([]byte, error) {
	return m.Serialized, m.Err
}

func (m *Msg) Unmarshal(raw []byte) error {
	m.Serialized = raw
	return m.Err
}

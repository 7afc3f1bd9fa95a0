package msig

import (
	"reflect"

	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// Msg is a request for the engine to take an action (make a state
// transition). It is just the request, and must be validated by the
// Handlers. All authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Path returns the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to
	// them.
	//
	// Must be alphanumeric [0-9A-Za-z_\-/]+
	Path() string

	// Validate performs a sanity check on the message content. It
	// returns an error for any message that cannot possibly be
	// processed, regardless of the application state.
	Validate() error
}

// Marshaller is anything that can be represented in binary
//
// Marshal may validate the data before serializing it and
// unless you previously validated the struct,
// errors should be expected.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal
//
// This is separated from Marshal, as this almost always requires
// a pointer, and functions that only need to marshal bytes can
// use the Marshaller interface to access non-pointers.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the engine.
// It includes the actual message, along with information needed
// to authenticate the sender (cryptographic signatures),
// and anything else needed to pass through middleware.
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction, ensures the message
// type and validates the content. Use in handlers instead of unrolling
// GetMsg, type cast and Validate calls.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non-nil pointer")
	}
	src := reflect.ValueOf(msg)
	if !src.Type().AssignableTo(dest.Type()) {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dest.Elem().Set(src.Elem())
	return nil
}

package dao

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes all models and messages of this package. Only
// concrete types cross the wire, so no interface registration is
// needed.
var cdc = amino.NewCodec()

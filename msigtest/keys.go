package msigtest

import (
	"github.com/vortex-hue/multisig-dao-wallet/crypto"
)

// NewKey returns a random ed25519 private key. Use it when a test
// needs a signer with a real key pair instead of a synthetic
// condition.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// Package crypto provides ed25519 keys and signatures, along with
// their mapping to conditions and addresses.
package crypto

import (
	"crypto/rand"

	"golang.org/x/crypto/ed25519"

	msig "github.com/vortex-hue/multisig-dao-wallet"
	"github.com/vortex-hue/multisig-dao-wallet/errors"
)

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte
}

// GenPrivKeyEd25519 returns a random new private key.
// It relies on crypto/rand for entropy.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PublicKey returns the public key that corresponds to this private key.
func (p *PrivateKey) PublicKey() *PublicKey {
	priv := ed25519.PrivateKey(p.Ed25519)
	pub := priv.Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// Sign calculates an ed25519 signature over the given message.
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "malformed private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message), nil
}

// Verify checks that the signature was produced over the message by
// the private key matching this public key.
func (p *PublicKey) Verify(message, sig []byte) bool {
	if len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig)
}

// Condition encodes the public key as a condition, the canonical
// identity format used in authentication.
func (p *PublicKey) Condition() msig.Condition {
	return msig.NewCondition("sigs", "ed25519", p.Ed25519)
}

// Address is a shortcut for Condition().Address()
func (p *PublicKey) Address() msig.Address {
	return p.Condition().Address()
}

package keeptest

import (
	"crypto/rand"

	"github.com/iov-one/keep"
	"golang.org/x/crypto/ed25519"
)

// NewKey generates a fresh ed25519 key pair.
func NewKey() (ed25519.PublicKey, ed25519.PrivateKey) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return pub, priv
}

// NewCondition returns a signature condition backed by a random
// ed25519 public key. Every call returns a different condition.
func NewCondition() keep.Condition {
	pub, _ := NewKey()
	return keep.NewCondition("sig", "ed25519", pub)
}

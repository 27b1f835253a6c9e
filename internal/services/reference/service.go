// Package reference generates the opaque correlation keys embedded in
// payment requests. A reference is a fresh ed25519 public key; downstream
// systems match an on-chain transaction back to the request that carried
// it, so a key is never reused across requests.
package reference

import (
	apperrors "hawamoni/internal/errors"

	"github.com/gagliardetto/solana-go"
)

type Generator interface {
	// Generate returns n fresh reference keys. n < 1 is treated as 1.
	Generate(n int) ([]solana.PublicKey, error)
}

type generator struct{}

func NewGenerator() Generator {
	return &generator{}
}

func (g *generator) Generate(n int) ([]solana.PublicKey, error) {
	if n < 1 {
		n = 1
	}
	keys := make([]solana.PublicKey, 0, n)
	for i := 0; i < n; i++ {
		priv, err := solana.NewRandomPrivateKey()
		if err != nil {
			// Without a reference the request cannot be correlated, so
			// a dead randomness source is fatal to creation.
			return nil, apperrors.ErrReferenceGeneration.WithCause(err)
		}
		keys = append(keys, priv.PublicKey())
	}
	return keys, nil
}

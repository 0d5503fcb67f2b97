package key

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"keykit/wallet-tools/base/crypto"
)

// Random returns a fresh private key from the system randomness source.
func Random() ([]byte, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate private key")
	}
	return priv.Serialize(), nil
}

// FromPassphrase derives a brainwallet key, sha256(phrase).
// Such keys are only as strong as the phrase.
func FromPassphrase(phrase string) ([]byte, error) {
	h := sha256.Sum256([]byte(phrase))
	if err := crypto.ValidatePrivateKey(h[:]); err != nil {
		return nil, err
	}
	return h[:], nil
}

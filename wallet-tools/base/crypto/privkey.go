package crypto

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// PrivateKeyLen is the length of a serialized secp256k1 scalar.
const PrivateKeyLen = 32

// ParsePrivateKey interprets b as a big-endian scalar and requires 0 < k < N.
func ParsePrivateKey(b []byte) (*btcec.ModNScalar, error) {
	if len(b) != PrivateKeyLen {
		return nil, errors.Wrapf(ErrInvalidPrivateKey, "length %d, want %d", len(b), PrivateKeyLen)
	}

	k := new(btcec.ModNScalar)
	if overflow := k.SetByteSlice(b); overflow {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "scalar not below curve order")
	}
	if k.IsZero() {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "scalar is zero")
	}
	return k, nil
}

// ValidatePrivateKey reports ErrInvalidPrivateKey unless b is a usable scalar.
func ValidatePrivateKey(b []byte) error {
	_, err := ParsePrivateKey(b)
	return err
}

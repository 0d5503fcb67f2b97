package crypto

import (
	"github.com/dchest/blake256"
	"golang.org/x/crypto/blake2b"
)

// Blake2b256 calculates the blake2b hash of the input data with 32 digest size.
func Blake2b256(data []byte) []byte {
	h := blake2b.Sum256(data)
	return h[:]
}

// Blake256 calculates and returns the blake256 hash of the input data.
func Blake256(data []byte) []byte {
	return Sum(data, blake256.New())
}

// DoubleBlake256 calculates the hash blake256(blake256(b)).
func DoubleBlake256(buf []byte) []byte {
	return Blake256(Blake256(buf))
}

package crypto

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// DigestFunc hashes a byte slice.
type DigestFunc func([]byte) []byte

// SumLegacyKeccak256 returns the Keccak-256 digest of the data.
func SumLegacyKeccak256(data []byte) []byte {
	return Sum(data, sha3.NewLegacyKeccak256())
}

var digests = map[string]DigestFunc{
	"sha256":    Sha256,
	"sha256d":   DoubleSha256,
	"ripemd160": SumRipemd160,
	"hash160":   Hash160,
	"blake256":  Blake256,
	"blake256d": DoubleBlake256,
	"blake2b":   Blake2b256,
	"keccak256": SumLegacyKeccak256,
}

// FindDigest returns the digest registered under name, case-insensitively.
func FindDigest(name string) (DigestFunc, error) {
	fn, ok := digests[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown digest %s, supported: %s", name, strings.Join(AllDigests(), ","))
	}
	return fn, nil
}

// AllDigests lists the registered digest names in order.
func AllDigests() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

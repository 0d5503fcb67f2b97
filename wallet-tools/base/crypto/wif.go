package crypto

import (
	"github.com/pkg/errors"

	"keykit/wallet-tools/base/libs/base58"
)

// CompressMagic marks a WIF whose public key is used in compressed form.
const CompressMagic byte = 0x01

type WIFKey struct {
	prefix     []byte
	privKey    []byte
	compressed bool

	// raw is the decoded text, checksum included; nil for keys built locally.
	raw []byte
}

func NewWIFKey(prefix []byte, privKey []byte, compressed bool) *WIFKey {
	return &WIFKey{
		prefix:     prefix,
		privKey:    privKey,
		compressed: compressed,
	}
}

// EncodeWIF encodes a raw 32-byte private key with a single version byte.
func EncodeWIF(privKey []byte, version byte, compressed bool) (string, error) {
	if err := ValidatePrivateKey(privKey); err != nil {
		return "", err
	}
	return NewWIFKey([]byte{version}, privKey, compressed).String(), nil
}

// DecodeWIF decodes a WIF string with a single version byte.
func DecodeWIF(key string) (*WIFKey, error) {
	return DecodeWIFKey(key, 1)
}

// DecodeWIFKey decodes a WIF string whose version prefix is prefixLen bytes long.
// A payload of 33 bytes after the prefix ending in CompressMagic is a compressed key,
// 32 bytes is uncompressed. On ErrChecksumMismatch or ErrInvalidPrivateKey the decoded
// key is still returned for display.
func DecodeWIFKey(key string, prefixLen int) (*WIFKey, error) {
	var (
		normalLen     = prefixLen + PrivateKeyLen + CheckSumLen
		compressedLen = normalLen + 1
	)

	if prefixLen < 0 {
		return nil, errors.Wrapf(ErrMalformedWIF, "negative prefix length %d", prefixLen)
	}

	b, err := base58.StdEncoding.Decode(key)
	if err != nil {
		return nil, err
	}

	n := len(b)
	switch n {
	case normalLen, compressedLen:
	default:
		return nil, errors.Wrapf(ErrMalformedWIF, "decoded %d bytes, want %d or %d", n, normalLen, compressedLen)
	}

	compressed := n == compressedLen
	if compressed && b[n-CheckSumLen-1] != CompressMagic {
		return nil, errors.Wrapf(ErrMalformedWIF, "compression marker %#02x", b[n-CheckSumLen-1])
	}

	k := &WIFKey{
		prefix:     b[:prefixLen],
		privKey:    b[prefixLen : prefixLen+PrivateKeyLen],
		compressed: compressed,
		raw:        b,
	}

	if _, ok := VerifyCheckSum(b); !ok {
		return k, errors.Wrapf(ErrChecksumMismatch, "wif %s", key)
	}

	if err := ValidatePrivateKey(k.privKey); err != nil {
		return k, err
	}
	return k, nil
}

func (k *WIFKey) Prefix() []byte {
	return k.prefix
}

// Version returns the first prefix byte.
func (k *WIFKey) Version() byte {
	if len(k.prefix) == 0 {
		return 0
	}
	return k.prefix[0]
}

func (k *WIFKey) PrivateKey() []byte {
	return k.privKey
}

func (k *WIFKey) Compressed() bool {
	return k.compressed
}

// Raw returns the decoded bytes including the checksum, or nil for a locally built key.
func (k *WIFKey) Raw() []byte {
	return k.raw
}

func (k *WIFKey) Data() []byte {
	return []byte(k.String())
}

func (k *WIFKey) String() string {
	payload := k.privKey
	if k.compressed {
		payload = make([]byte, 0, len(k.privKey)+1)
		payload = append(payload, k.privKey...)
		payload = append(payload, CompressMagic)
	}
	return Base58Check(payload, k.prefix)
}

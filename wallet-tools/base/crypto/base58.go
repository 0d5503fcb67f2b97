package crypto

import (
	"github.com/pkg/errors"

	"keykit/wallet-tools/base/libs/base58"
)

// Base58Check encodes prefix || input || checksum with the bitcoin alphabet.
func Base58Check(input []byte, prefix []byte) string {
	return Base58CheckSum(input, prefix, CheckSum)
}

// Base58CheckSum is Base58Check with a caller supplied checksum.
func Base58CheckSum(input []byte, prefix []byte, sum CheckSumFunc) string {
	b := make([]byte, 0, len(prefix)+len(input))
	b = append(b, prefix...)
	b = append(b, input...)
	return base58.StdEncoding.Encode(appendCheckSum(b, sum))
}

// Base58CheckResult is the decoded form of a Base58Check string.
type Base58CheckResult struct {
	// Raw holds every decoded byte, checksum included.
	Raw      []byte
	Prefix   []byte
	Payload  []byte
	CheckSum [CheckSumLen]byte
	Valid    bool
}

// DeBase58Check decodes s and splits it into prefix, payload and checksum.
// On a checksum mismatch the result is still returned together with ErrChecksumMismatch.
func DeBase58Check(s string, prefixLen int) (*Base58CheckResult, error) {
	return DeBase58CheckSum(s, prefixLen, CheckSum)
}

// DeBase58CheckSum is DeBase58Check with a caller supplied checksum.
func DeBase58CheckSum(s string, prefixLen int, sum CheckSumFunc) (*Base58CheckResult, error) {
	b, err := base58.StdEncoding.Decode(s)
	if err != nil {
		return nil, err
	}

	if prefixLen < 0 || len(b) < prefixLen+CheckSumLen {
		return nil, errors.Wrapf(ErrMalformedPayload, "decoded %d bytes, need at least %d", len(b), prefixLen+CheckSumLen)
	}

	body := b[:len(b)-CheckSumLen]
	r := &Base58CheckResult{
		Raw:     b,
		Prefix:  body[:prefixLen],
		Payload: body[prefixLen:],
	}
	copy(r.CheckSum[:], b[len(b)-CheckSumLen:])
	r.Valid = sum(body) == r.CheckSum
	if !r.Valid {
		return r, errors.Wrapf(ErrChecksumMismatch, "claimed %x", r.CheckSum)
	}
	return r, nil
}

// ReplaceAddressPrefix replaces base58 format address's prefix.
func ReplaceAddressPrefix(addr string, prefixLen int, newPrefix []byte) (string, error) {
	if len(newPrefix) == 0 {
		return addr, nil
	}

	r, err := DeBase58Check(addr, prefixLen)
	if err != nil {
		return "", err
	}
	return Base58Check(r.Payload, newPrefix), nil
}

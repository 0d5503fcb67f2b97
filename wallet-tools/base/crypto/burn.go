package crypto

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"

	"keykit/wallet-tools/base/libs/base58"
)

// BurnAddressLen is the text length of a P2PKH address with a one byte prefix.
const BurnAddressLen = 34

// BurnAddress builds a provably unspendable address that starts with root.
// root is padded with filler up to BurnAddressLen characters, decoded, and the trailing
// 4 bytes are replaced by the checksum of the rest. The decoded template must be
// prefix || 20 bytes || 4 bytes, so root has to be readable as an address of that network.
func BurnAddress(root string, filler byte, prefix []byte) (string, error) {
	if !base58.StdEncoding.Valid(string(filler)) {
		return "", errors.Wrapf(ErrInvalidBase58Character, "filler %q", filler)
	}
	if len(root) > BurnAddressLen {
		return "", errors.Wrapf(ErrMalformedPayload, "root longer than %d characters", BurnAddressLen)
	}

	template := root + strings.Repeat(string(filler), BurnAddressLen-len(root))
	b, err := base58.StdEncoding.Decode(template)
	if err != nil {
		return "", err
	}

	want := len(prefix) + Hash160Len + CheckSumLen
	if len(b) != want {
		return "", errors.Wrapf(ErrMalformedPayload, "template %s decodes to %d bytes, want %d", template, len(b), want)
	}
	if !bytes.HasPrefix(b, prefix) {
		return "", errors.Wrapf(ErrMalformedPayload, "template %s does not carry prefix %x", template, prefix)
	}

	return base58.StdEncoding.Encode(AppendCheckSum(b[:len(b)-CheckSumLen])), nil
}

package crypto

import (
	"github.com/pkg/errors"

	"keykit/wallet-tools/base/libs/base58"
)

var (
	// ErrMalformedHex is returned for odd-length hex or non-hex characters.
	ErrMalformedHex = errors.New("malformed hex")
	// ErrInvalidBase58Character is returned for characters outside the base58 alphabet.
	ErrInvalidBase58Character = base58.ErrInvalidCharacter
	// ErrMalformedWIF is returned when a WIF payload has the wrong length or marker.
	ErrMalformedWIF = errors.New("malformed wif")
	// ErrChecksumMismatch is returned when the trailing 4 bytes do not match the payload.
	ErrChecksumMismatch = errors.New("checksum mismatch")
	// ErrMalformedPayload is returned when decoded bytes are too short for the expected layout.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrInvalidPrivateKey is returned for scalars that are not 32 bytes in [1, N-1].
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// HexToBytes decodes hex text of either case.
func HexToBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformedHex, "odd length %d", len(s))
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedHex, err.Error())
	}
	return b, nil
}

// BytesToHex encodes b as lowercase hex, or uppercase when upper is set.
func BytesToHex(b []byte, upper bool) string {
	s := hex.EncodeToString(b)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

package crypto

import (
	"bytes"

	"github.com/pkg/errors"
)

const CheckSumLen = 4

// CheckSumFunc computes the 4-byte integrity tag of a payload.
type CheckSumFunc func(input []byte) [CheckSumLen]byte

func CheckSum(input []byte) (cksum [CheckSumLen]byte) {
	h := DoubleSha256(input)
	copy(cksum[:], h[:CheckSumLen])
	return
}

func Blake256CheckSum(input []byte) (cksum [CheckSumLen]byte) {
	h := DoubleBlake256(input)
	copy(cksum[:], h[:CheckSumLen])
	return
}

// AppendCheckSum returns a new slice holding input followed by its checksum.
func AppendCheckSum(input []byte) []byte {
	return appendCheckSum(input, CheckSum)
}

func appendCheckSum(input []byte, sum CheckSumFunc) []byte {
	b := make([]byte, 0, len(input)+CheckSumLen)
	b = append(b, input...)
	cksum := sum(b)
	return append(b, cksum[:]...)
}

// VerifyCheckSum splits off the trailing checksum and checks it against the rest.
// The payload is returned even when ok is false.
func VerifyCheckSum(b []byte) (payload []byte, ok bool) {
	if len(b) < CheckSumLen {
		return nil, false
	}

	payload = b[:len(b)-CheckSumLen]
	cksum := CheckSum(payload)
	return payload, bytes.Equal(cksum[:], b[len(b)-CheckSumLen:])
}

// CheckSumReport records each step of a checksum verification.
type CheckSumReport struct {
	Payload      []byte
	FirstSha256  []byte
	SecondSha256 []byte
	Computed     [CheckSumLen]byte
	Claimed      [CheckSumLen]byte
	OK           bool
}

// InspectCheckSum verifies the trailing checksum of b and keeps the intermediate values.
func InspectCheckSum(b []byte) (*CheckSumReport, error) {
	if len(b) < CheckSumLen {
		return nil, errors.Wrapf(ErrMalformedPayload, "need at least %d bytes, got %d", CheckSumLen, len(b))
	}

	r := &CheckSumReport{
		Payload: b[:len(b)-CheckSumLen],
	}
	first := Sha256(r.Payload)
	second := Sha256(first)
	r.FirstSha256 = first
	r.SecondSha256 = second
	copy(r.Computed[:], second[:CheckSumLen])
	copy(r.Claimed[:], b[len(b)-CheckSumLen:])
	r.OK = r.Computed == r.Claimed
	return r, nil
}

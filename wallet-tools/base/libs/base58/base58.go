package base58

import (
	"strings"
	"unicode/utf8"

	mrbase58 "github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// ErrInvalidCharacter is returned when decoding meets a character outside the alphabet.
var ErrInvalidCharacter = errors.New("invalid base58 character")

// Base58 defines the basic info of base58 instance.
type Base58 struct {
	alphabet string
	digits   *mrbase58.Alphabet
}

// New returns a base58 encoding over the given 58-character alphabet.
func New(alphabet string) *Base58 {
	if len(alphabet) != 58 {
		panic("base58: alphabet must be 58 bytes long")
	}

	return &Base58{
		alphabet: alphabet,
		digits:   mrbase58.NewAlphabet(alphabet),
	}
}

var (
	// StdEncoding represents the origin bitcoin base58 algorithm.
	StdEncoding = New("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")
	// RippleEncoding represents the ripple base58 algorithm.
	RippleEncoding = New("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")
	// FlickrEncoding represents the flickr short url alphabet.
	FlickrEncoding = New("123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ")
)

// Alphabet returns the 58 digits of the encoding, zero digit first.
func (b58 *Base58) Alphabet() string {
	return b58.alphabet
}

// Encode encodes a byte slice to a modified base58 string.
// Every leading zero byte becomes one leading zero digit.
func (b58 *Base58) Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return mrbase58.EncodeAlphabet(b, b58.digits)
}

// Decode decodes a modified base58 string to a byte slice.
// Every leading zero digit becomes one leading zero byte.
func (b58 *Base58) Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return []byte{}, nil
	}

	for i, r := range s {
		if r >= utf8.RuneSelf || strings.IndexByte(b58.alphabet, byte(r)) < 0 {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", r, i)
		}
	}

	b, err := mrbase58.DecodeAlphabet(s, b58.digits)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidCharacter, err.Error())
	}
	return b, nil
}

// Valid reports whether every character of s belongs to the alphabet.
func (b58 *Base58) Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(b58.alphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

package key

import (
	"keykit/wallet-tools/base/crypto/addrprovider"
)

// Deriver turns private keys into public keys and public keys into P2PKH addresses.
type Deriver struct {
	ctx *Context
}

// NewDeriver returns a Deriver over ctx, or over DefaultContext when ctx is nil.
func NewDeriver(ctx *Context) *Deriver {
	if ctx == nil {
		ctx = DefaultContext()
	}
	return &Deriver{ctx: ctx}
}

// PublicKeyOf returns the serialized public key of a raw 32-byte private key.
func (d *Deriver) PublicKeyOf(privKey []byte, compressed bool) ([]byte, error) {
	p, err := d.ctx.ScalarBaseMultiply(privKey)
	if err != nil {
		return nil, err
	}
	return d.ctx.PointSerialize(p, compressed), nil
}

// Reserialize parses pubKey and encodes the same point in the requested form.
func (d *Deriver) Reserialize(pubKey []byte, compressed bool) ([]byte, error) {
	p, err := d.ctx.PointParse(pubKey)
	if err != nil {
		return nil, err
	}
	return d.ctx.PointSerialize(p, compressed), nil
}

// AddressOf derives the Base58Check address of pubKey under a one byte version.
// The serialized form of pubKey is hashed as given, so the compressed and
// uncompressed encodings of one point give different addresses.
func (d *Deriver) AddressOf(pubKey []byte, version byte) (string, error) {
	return d.AddressWithPrefix(pubKey, []byte{version})
}

// AddressWithPrefix is AddressOf for networks with multi-byte address prefixes.
func (d *Deriver) AddressWithPrefix(pubKey []byte, prefix []byte) (string, error) {
	if _, err := d.ctx.PointParse(pubKey); err != nil {
		return "", err
	}
	return addrprovider.NewBTC(prefix).AddressString(pubKey), nil
}

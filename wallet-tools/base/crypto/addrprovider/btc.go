package addrprovider

import (
	"keykit/wallet-tools/base/crypto"
)

const (
	BTCClass Class = "btc"
)

// BTC is the pay-to-pubkey-hash address scheme: Base58Check(prefix || hash160(pubKey)).
type BTC struct {
	addressPrefix []byte
}

func NewBTC(addressPrefix []byte) AddrProvider {
	return &BTC{
		addressPrefix: addressPrefix,
	}
}

func (*BTC) Class() Class {
	return BTCClass
}

func (*BTC) Address(pubKey []byte) []byte {
	return crypto.Hash160(pubKey)
}

func (p *BTC) AddressString(pubKey []byte) string {
	return crypto.Base58Check(p.Address(pubKey), p.addressPrefix)
}

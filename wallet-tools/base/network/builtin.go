package network

import (
	"github.com/btcsuite/btcd/chaincfg"
)

func init() {
	registerChainParams(map[string]*chaincfg.Params{
		"BTC":        &chaincfg.MainNetParams,
		"BTCtest":    &chaincfg.TestNet3Params,
		"BTCregtest": &chaincfg.RegressionNetParams,
		"BTCsimnet":  &chaincfg.SimNetParams,
	})

	registerBTCLike(map[string][2][]byte{
		"BCH":  {{0}, {0x80}},
		"BSV":  {{0}, {0x80}},
		"LTC":  {{0x30}, {0xb0}},
		"DOGE": {{0x1e}, {0x9e}},
		"DASH": {{0x4c}, {0xcc}},
		"ZEC":  {{0x1c, 0xb8}, {0x80}},
	})
}

func registerChainParams(params map[string]*chaincfg.Params) {
	for c, p := range params {
		Register(&Params{
			Class:         c,
			AddressPrefix: []byte{p.PubKeyHashAddrID},
			WIFPrefix:     []byte{p.PrivateKeyID},
		})
	}
}

func registerBTCLike(prefixes map[string][2][]byte) {
	for c, p := range prefixes {
		Register(&Params{
			Class:         c,
			AddressPrefix: p[0],
			WIFPrefix:     p[1],
		})
	}
}

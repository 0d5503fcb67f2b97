package network

import (
	"bytes"
	"fmt"

	"github.com/spf13/cast"

	"keykit/wallet-base/viper"
	"keykit/wallet-tools/base/crypto"
)

// LoadConfig registers the networks configured under key, e.g.
//
//	networks:
//	  VTC:
//	    address: "47"
//	    wif: "80"
//
// Prefixes are hex. Loading the same entry twice is fine, redefining a
// registered class is not.
func LoadConfig(key string) error {
	entries := viper.GetStringMap(key, nil)
	for class, v := range entries {
		fields := cast.ToStringMapString(v)
		addrPrefix, err := parsePrefix(class, "address", fields["address"])
		if err != nil {
			return err
		}

		wifPrefix, err := parsePrefix(class, "wif", fields["wif"])
		if err != nil {
			return err
		}

		if p, ok := Find(class); ok && bytes.Equal(p.AddressPrefix, addrPrefix) && bytes.Equal(p.WIFPrefix, wifPrefix) {
			continue
		}

		err = Register(&Params{
			Class:         class,
			AddressPrefix: addrPrefix,
			WIFPrefix:     wifPrefix,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func parsePrefix(class, field, value string) ([]byte, error) {
	if len(value) == 0 {
		return nil, fmt.Errorf("network %s: missing %s prefix", class, field)
	}

	prefix, err := crypto.HexToBytes(value)
	if err != nil {
		return nil, fmt.Errorf("network %s: %s prefix, %v", class, field, err)
	}
	return prefix, nil
}

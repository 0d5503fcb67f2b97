package network

import (
	"fmt"
	"sort"
	"strings"

	"keykit/wallet-tools/base/crypto/addrprovider"
)

// Params holds the version prefixes a coin class uses for
// P2PKH addresses and WIF private keys.
type Params struct {
	Class         string
	AddressPrefix []byte
	WIFPrefix     []byte
}

// AddrProvider returns a P2PKH address provider for the network.
func (p *Params) AddrProvider() addrprovider.AddrProvider {
	return addrprovider.NewBTC(p.AddressPrefix)
}

// WIFVersion returns the one byte WIF prefix.
func (p *Params) WIFVersion() byte {
	return p.WIFPrefix[0]
}

var (
	networks = make(map[string]*Params)
)

// Register adds a network to the table. Classes are case-insensitive.
func Register(p *Params) error {
	if p == nil {
		return nil
	}

	if len(p.Class) == 0 {
		return fmt.Errorf("network class can't be empty")
	}

	if len(p.AddressPrefix) == 0 || len(p.WIFPrefix) == 0 {
		return fmt.Errorf("network %s: address and wif prefix can't be empty", p.Class)
	}

	if len(p.WIFPrefix) != 1 {
		return fmt.Errorf("network %s: wif prefix must be 1 byte, got %d", p.Class, len(p.WIFPrefix))
	}

	class := strings.ToUpper(p.Class)
	if _, ok := networks[class]; ok {
		return fmt.Errorf("duplicated network class: %s", class)
	}

	networks[class] = p
	return nil
}

// Find looks a network up by class.
func Find(class string) (*Params, bool) {
	p, ok := networks[strings.ToUpper(class)]
	return p, ok
}

// MustFind is Find returning an error for an unknown class.
func MustFind(class string) (*Params, error) {
	p, ok := Find(class)
	if !ok {
		return nil, fmt.Errorf("invalid network class: %s, supported: %s", class, strings.Join(AllClasses(), ","))
	}
	return p, nil
}

// AllClasses returns the registered classes, sorted.
func AllClasses() []string {
	if len(networks) == 0 {
		return nil
	}

	classes := make([]string, 0, len(networks))
	for c := range networks {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

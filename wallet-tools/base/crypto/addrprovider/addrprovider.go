package addrprovider

type Class string

// AddrProvider derives addresses from serialized public keys.
type AddrProvider interface {
	Class() Class

	Address(pubKey []byte) []byte
	AddressString(pubKey []byte) string
}

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/crypto/key"
)

func (a *app) pubkeyCommand() *cmd.Command {
	var pubKeys []string
	c := cmd.New(
		"pubkey [privkey]",
		"derive the public keys of a private key, or re-serialize public keys.",
		"./keytool pubkey 0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d\n./keytool pubkey -p <pubkey> -p <pubkey>",
		func(c *cmd.Command, args []string) error {
			d := key.NewDeriver(a.ctx)
			if len(pubKeys) > 0 {
				for i, k := range pubKeys {
					data, err := crypto.HexToBytes(k)
					if err != nil {
						return errors.Wrapf(err, "pubkey at index %d", i)
					}

					compressed, err := d.Reserialize(data, true)
					if err != nil {
						return errors.Wrapf(err, "parse pubkey at index %d", i)
					}

					uncompressed, err := d.Reserialize(data, false)
					if err != nil {
						return errors.Wrapf(err, "pubkey at index %d", i)
					}

					printField(c.Out(), "compressed", a.hex(compressed))
					printField(c.Out(), "uncompressed", a.hex(uncompressed))
				}
				return nil
			}

			privKey, err := privKeyInput(c, args)
			if err != nil {
				return err
			}

			compressed, err := d.PublicKeyOf(privKey, true)
			if err != nil {
				return err
			}

			uncompressed, err := d.PublicKeyOf(privKey, false)
			if err != nil {
				return err
			}

			printField(c.Out(), "compressed", a.hex(compressed))
			printField(c.Out(), "uncompressed", a.hex(uncompressed))
			return nil
		}).Args(cobra.MaximumNArgs(1))
	c.Flags().StringP("privkey", "k", "", "the private key, prompted when empty")
	c.Flags().StringSliceVarP(&pubKeys, "pubkey", "p", nil, "public keys to re-serialize")
	return c
}

func (a *app) addressCommand() *cmd.Command {
	var prefix string
	c := cmd.New(
		"address <pubkey>",
		"derive the p2pkh address of a public key.",
		"./keytool address 0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
		func(c *cmd.Command, args []string) error {
			pubKey, err := crypto.HexToBytes(args[0])
			if err != nil {
				return err
			}

			addrPrefix := a.params.AddressPrefix
			if len(prefix) > 0 {
				addrPrefix, err = crypto.HexToBytes(prefix)
				if err != nil {
					return err
				}
			}

			addr, err := key.NewDeriver(a.ctx).AddressWithPrefix(pubKey, addrPrefix)
			if err != nil {
				return err
			}

			printField(c.Out(), "hash160", a.hex(crypto.Hash160(pubKey)))
			printField(c.Out(), "address", addr)
			return nil
		}).Args(cobra.ExactArgs(1))
	c.Flags().StringVarP(&prefix, "prefix", "p", "", "hex address prefix, overrides the network")
	return c
}

package main

import (
	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
)

func (a *app) wifCommand() *cmd.Command {
	var compressed bool
	encode := cmd.New(
		"encode [privkey]",
		"encode a hex private key as wif.",
		"./keytool wif encode -z 0c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
		func(c *cmd.Command, args []string) error {
			privKey, err := privKeyInput(c, args)
			if err != nil {
				return err
			}

			wif, err := crypto.EncodeWIF(privKey, a.params.WIFVersion(), compressed)
			if err != nil {
				return err
			}

			printField(c.Out(), "wif", wif)
			return nil
		}).Args(cobra.MaximumNArgs(1))
	encode.Flags().BoolVarP(&compressed, "compressed", "z", false, "mark the key as compressed")
	encode.Flags().StringP("privkey", "k", "", "the private key, prompted when empty")

	var prefixLen int
	decode := cmd.New(
		"decode <wif>",
		"decode a wif string.",
		"./keytool wif decode 5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
		func(c *cmd.Command, args []string) error {
			k, err := crypto.DecodeWIFKey(args[0], prefixLen)
			if k != nil {
				printField(c.Out(), "version", a.hex(k.Prefix()))
				printField(c.Out(), "private key", a.hex(k.PrivateKey()))
				printField(c.Out(), "compressed", k.Compressed())
				printField(c.Out(), "valid", err == nil)
			}
			return err
		}).Args(cobra.ExactArgs(1))
	decode.Flags().IntVarP(&prefixLen, "prefixlen", "l", 1, "the version prefix length in bytes")

	return cmd.NewGroup("wif", "wallet import format encode and decode.", encode, decode)
}

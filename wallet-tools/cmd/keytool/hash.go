package main

import (
	"strings"

	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
)

func (a *app) hashCommand() *cmd.Command {
	var (
		algo  string
		isHex bool
	)
	c := cmd.New(
		"hash <input>",
		"hash text or hex bytes.",
		"./keytool hash -a hash160 -x 0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352",
		func(c *cmd.Command, args []string) error {
			digest, err := crypto.FindDigest(algo)
			if err != nil {
				return err
			}

			data := []byte(args[0])
			if isHex {
				data, err = crypto.HexToBytes(args[0])
				if err != nil {
					return err
				}
			}

			printField(c.Out(), strings.ToLower(algo), a.hex(digest(data)))
			return nil
		}).Args(cobra.ExactArgs(1))
	c.Flags().StringVarP(&algo, "algo", "a", "sha256", "the digest: "+strings.Join(crypto.AllDigests(), ","))
	c.Flags().BoolVarP(&isHex, "hex", "x", false, "the input is hex bytes")
	return c
}

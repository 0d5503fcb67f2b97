package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/libs/base58"
)

var alphabets = map[string]*base58.Base58{
	"bitcoin": base58.StdEncoding,
	"ripple":  base58.RippleEncoding,
	"flickr":  base58.FlickrEncoding,
}

func findAlphabet(c *cmd.Command) (*base58.Base58, error) {
	name := c.CobraCmd().Flag("alphabet").Value.String()
	enc, ok := alphabets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown alphabet %s", name)
	}
	return enc, nil
}

func (a *app) base58Command() *cmd.Command {
	encode := cmd.New(
		"encode <hex>",
		"base58 encode hex bytes.",
		"./keytool base58 encode 00010203",
		func(c *cmd.Command, args []string) error {
			enc, err := findAlphabet(c)
			if err != nil {
				return err
			}

			b, err := crypto.HexToBytes(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Out(), enc.Encode(b))
			return nil
		}).Args(cobra.ExactArgs(1))

	decode := cmd.New(
		"decode <base58>",
		"base58 decode text to hex bytes.",
		"./keytool base58 decode 1Ldp",
		func(c *cmd.Command, args []string) error {
			enc, err := findAlphabet(c)
			if err != nil {
				return err
			}

			b, err := enc.Decode(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(c.Out(), a.hex(b))
			return nil
		}).Args(cobra.ExactArgs(1))

	group := cmd.NewGroup("base58", "base58 encode and decode.", encode, decode)
	group.Flags().StringP("alphabet", "a", "bitcoin", "the alphabet: bitcoin,ripple,flickr")
	return group
}

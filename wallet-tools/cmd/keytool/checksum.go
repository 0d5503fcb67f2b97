package main

import (
	"io"

	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/libs/base58"
)

func (a *app) printCheckSumReport(w io.Writer, r *crypto.CheckSumReport) {
	printField(w, "payload", a.hex(r.Payload))
	printField(w, "sha256", a.hex(r.FirstSha256))
	printField(w, "sha256 again", a.hex(r.SecondSha256))
	printField(w, "computed checksum", a.hex(r.Computed[:]))
	printField(w, "claimed checksum", a.hex(r.Claimed[:]))
	printField(w, "valid", r.OK)
}

func (a *app) checksumCommand() *cmd.Command {
	var verify bool
	c := cmd.New(
		"checksum <hex>",
		"append the double sha256 checksum to hex bytes, or verify a trailing one.",
		"./keytool checksum 800c28fca386c7a227600b2fe50b7cae11ec86d3bf1fbe471be89827e19d72aa1d",
		func(c *cmd.Command, args []string) error {
			b, err := crypto.HexToBytes(args[0])
			if err != nil {
				return err
			}

			if !verify {
				sum := crypto.CheckSum(b)
				printField(c.Out(), "checksum", a.hex(sum[:]))
				printField(c.Out(), "with checksum", a.hex(crypto.AppendCheckSum(b)))
				return nil
			}

			r, err := crypto.InspectCheckSum(b)
			if err != nil {
				return err
			}

			a.printCheckSumReport(c.Out(), r)
			if !r.OK {
				return crypto.ErrChecksumMismatch
			}
			return nil
		}).Args(cobra.ExactArgs(1))
	c.Flags().BoolVarP(&verify, "verify", "v", false, "treat the last 4 bytes as a checksum and verify them")
	return c
}

func (a *app) inspectCommand() *cmd.Command {
	var prefixLen int
	c := cmd.New(
		"inspect <base58check>",
		"walk through the decoding of a wif or address.",
		"./keytool inspect 5HueCGU8rMjxEXxiPuD5BDku4MkFqeZyd4dZ1jvhTVqvbTLvyTJ",
		func(c *cmd.Command, args []string) error {
			b, err := base58.StdEncoding.Decode(args[0])
			if err != nil {
				return err
			}

			printField(c.Out(), "bytes", a.hex(b))

			r, err := crypto.InspectCheckSum(b)
			if err != nil {
				return err
			}
			a.printCheckSumReport(c.Out(), r)

			res, err := crypto.DeBase58Check(args[0], prefixLen)
			if res != nil {
				printField(c.Out(), "prefix", a.hex(res.Prefix))
				printField(c.Out(), "body", a.hex(res.Payload))
			}
			if err != nil {
				return err
			}

			if k, err := crypto.DecodeWIFKey(args[0], prefixLen); err == nil {
				printField(c.Out(), "private key", a.hex(k.PrivateKey()))
				printField(c.Out(), "compressed", k.Compressed())
			}
			return nil
		}).Args(cobra.ExactArgs(1))
	c.Flags().IntVarP(&prefixLen, "prefixlen", "l", 1, "the version prefix length in bytes")
	return c
}

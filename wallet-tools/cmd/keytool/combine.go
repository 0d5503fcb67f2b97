package main

import (
	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/crypto/key"
	"keykit/wallet-tools/base/keyinfo"
)

func (a *app) combineCommand() *cmd.Command {
	privOp := func(use, short string, op func(*key.Combiner, []byte, []byte) ([]byte, error)) *cmd.Command {
		return cmd.New(use, short, "", func(c *cmd.Command, args []string) error {
			k1, err := keyinfo.ParseKey(args[0])
			if err != nil {
				return err
			}

			k2, err := keyinfo.ParseKey(args[1])
			if err != nil {
				return err
			}

			r, err := op(key.NewCombiner(a.ctx), k1, k2)
			if err != nil {
				return err
			}

			info, err := a.reporter().Describe(r)
			if err != nil {
				return err
			}
			printInfo(c.Out(), info)
			return nil
		}).Args(cobra.ExactArgs(2))
	}

	var compressed bool
	pubOp := func(use, short string, op func(*key.Combiner, []byte, []byte) ([]byte, error)) *cmd.Command {
		return cmd.New(use, short, "", func(c *cmd.Command, args []string) error {
			p, err := crypto.HexToBytes(args[0])
			if err != nil {
				return err
			}

			q, err := crypto.HexToBytes(args[1])
			if err != nil {
				return err
			}

			r, err := op(key.NewCombiner(a.ctx), p, q)
			if err != nil {
				return err
			}

			printField(c.Out(), "public key", a.hex(r))
			printField(c.Out(), "address", a.params.AddrProvider().AddressString(r))
			return nil
		}).Args(cobra.ExactArgs(2))
	}

	group := cmd.NewGroup("combine", "add or multiply keys.",
		privOp("privadd <a> <b>", "(a + b) mod n of two private keys.", (*key.Combiner).AddPrivateKeys),
		privOp("privmul <a> <b>", "(a * b) mod n of two private keys.", (*key.Combiner).MulPrivateKeys),
		pubOp("pubadd <P> <Q>", "the point P + Q of two public keys.", func(cb *key.Combiner, p, q []byte) ([]byte, error) {
			return cb.AddPublicKeys(p, q, compressed)
		}),
		pubOp("pubmul <P> <k>", "the point k*P of a public key and a hex private key.", func(cb *key.Combiner, p, k []byte) ([]byte, error) {
			return cb.MulPublicKeyByPrivateKey(p, k, compressed)
		}),
	)
	group.Flags().BoolVarP(&compressed, "compressed", "z", false, "print combined public keys compressed")
	return group
}

func (a *app) pairCommand() *cmd.Command {
	return cmd.New(
		"pair <a> <b>",
		"report two keys with their sum and product, and check the public key algebra.",
		"./keytool pair <privkey> <privkey>",
		func(c *cmd.Command, args []string) error {
			k1, err := keyinfo.ParseKey(args[0])
			if err != nil {
				return err
			}

			k2, err := keyinfo.ParseKey(args[1])
			if err != nil {
				return err
			}

			pi, err := a.reporter().DescribePair(k1, k2)
			if err != nil {
				return err
			}

			for _, part := range []struct {
				name string
				info *keyinfo.Info
			}{{"a", pi.A}, {"b", pi.B}, {"a+b", pi.Sum}, {"a*b", pi.Product}} {
				printField(c.Out(), "key", part.name)
				printInfo(c.Out(), part.info)
			}
			printField(c.Out(), "pub(a+b) == A+B", pi.SumMatches)
			printField(c.Out(), "pub(a*b) == b*A", pi.ProductMatches)
			return nil
		}).Args(cobra.ExactArgs(2))
}

package main

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/crypto/key"
)

func (a *app) brainCommand() *cmd.Command {
	var passphrase string
	c := cmd.New(
		"brain",
		"derive a key from a passphrase, sha256(passphrase).",
		"./keytool brain -P 'correct horse battery staple'",
		func(c *cmd.Command, args []string) error {
			if err := c.PasswordWithConfirm("passphrase", true); err != nil {
				return err
			}

			privKey, err := key.FromPassphrase(passphrase)
			if err != nil {
				return err
			}

			info, err := a.reporter().Describe(privKey)
			if err != nil {
				return err
			}
			printInfo(c.Out(), info)
			return nil
		}).Args(cobra.NoArgs)
	c.Flags().StringVarP(&passphrase, "passphrase", "P", "", "the passphrase, prompted when empty")
	return c
}

func (a *app) randomCommand() *cmd.Command {
	var count int
	c := cmd.New(
		"random",
		"generate random keys.",
		"./keytool random -N 3",
		func(c *cmd.Command, args []string) error {
			r := a.reporter()
			for i := 0; i < count; i++ {
				privKey, err := key.Random()
				if err != nil {
					return err
				}

				info, err := r.Describe(privKey)
				if err != nil {
					return err
				}
				printInfo(c.Out(), info)
			}
			log.Debugf("generated %d random keys", count)
			return nil
		}).Args(cobra.NoArgs)
	c.Flags().IntVarP(&count, "number", "N", 1, "the number of keys")
	return c
}

func (a *app) burnCommand() *cmd.Command {
	var filler string
	c := cmd.New(
		"burn <root>",
		"build an unspendable address starting with root.",
		"./keytool burn 1BurnAddress",
		func(c *cmd.Command, args []string) error {
			if len(filler) != 1 {
				return errors.Wrapf(crypto.ErrInvalidBase58Character, "filler %q must be one character", filler)
			}

			addr, err := crypto.BurnAddress(args[0], filler[0], a.params.AddressPrefix)
			if err != nil {
				return err
			}

			printField(c.Out(), "address", addr)
			return nil
		}).Args(cobra.ExactArgs(1))
	c.Flags().StringVarP(&filler, "filler", "f", "x", "the character padding root")
	return c
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/network"
)

func (a *app) networksCommand() *cmd.Command {
	return cmd.New(
		"networks",
		"list the known networks and their version prefixes.",
		"./keytool networks",
		func(c *cmd.Command, args []string) error {
			for _, class := range network.AllClasses() {
				p, _ := network.Find(class)
				fmt.Fprintf(c.Out(), "%-12s address %-6x wif %x\n", class, p.AddressPrefix, p.WIFPrefix)
			}
			return nil
		}).Args(cobra.NoArgs)
}

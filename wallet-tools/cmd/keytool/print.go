package main

import (
	"fmt"
	"io"

	"keykit/wallet-base/cmd"
	"keykit/wallet-tools/base/crypto"
	"keykit/wallet-tools/base/keyinfo"
)

func printField(w io.Writer, name string, value interface{}) {
	fmt.Fprintf(w, "%-22s %v\n", name+":", value)
}

func printInfo(w io.Writer, info *keyinfo.Info) {
	for _, f := range info.Fields() {
		printField(w, f[0], f[1])
	}
}

func (a *app) hex(b []byte) string {
	return crypto.BytesToHex(b, a.upper)
}

// privKeyInput returns the private key given as the first argument or, when
// there is none, through the privkey flag, prompting if that is empty too.
func privKeyInput(c *cmd.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return keyinfo.ParseKey(args[0])
	}

	if err := c.Secret("privkey"); err != nil {
		return nil, err
	}
	return keyinfo.ParseKey(c.CobraCmd().Flag("privkey").Value.String())
}

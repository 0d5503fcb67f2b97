package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/howeyc/gopass"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Command struct {
	cmd *cobra.Command
}

func New(use, short, example string, run func(c *Command, args []string) error) *Command {
	var c *Command
	c = &Command{
		cmd: &cobra.Command{
			Use:           use,
			Short:         short,
			Example:       example,
			SilenceUsage:  true,
			SilenceErrors: true,
		},
	}

	if run != nil {
		c.cmd.RunE = func(cmd *cobra.Command, args []string) error {
			return run(c, args)
		}
	}
	return c
}

// NewGroup returns a command that only holds sub-commands.
func NewGroup(use, short string, subs ...*Command) *Command {
	c := New(use, short, "", nil)
	c.AddCommand(subs...)
	return c
}

func (c *Command) CobraCmd() *cobra.Command {
	return c.cmd
}

func (c *Command) AddCommand(subs ...*Command) {
	for _, sub := range subs {
		c.cmd.AddCommand(sub.cmd)
	}
}

// PreRun sets a hook that runs before this command and every sub-command.
func (c *Command) PreRun(run func(c *Command) error) *Command {
	c.cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return run(c)
	}
	return c
}

// Args sets the positional argument validator.
func (c *Command) Args(args cobra.PositionalArgs) *Command {
	c.cmd.Args = args
	return c
}

func (c *Command) Flags() *pflag.FlagSet {
	return c.cmd.PersistentFlags()
}

// Out is where a command writes its results.
func (c *Command) Out() io.Writer {
	return c.cmd.OutOrStdout()
}

func (c *Command) SetOut(w io.Writer) {
	c.cmd.SetOut(w)
}

func (c *Command) SetArgs(args []string) {
	c.cmd.SetArgs(args)
}

// Secret prompts for the value of flagName with masked input when the
// flag was left empty.
func (c *Command) Secret(flagName string) error {
	return c.PasswordWithConfirm(flagName, false)
}

func (c *Command) PasswordWithConfirm(flagName string, with bool) error {
	flag := c.cmd.Flag(flagName)
	if flag == nil {
		return fmt.Errorf("flag accessed but not defined: %s", flagName)
	}

	if len(flag.Value.String()) == 0 {
		fmt.Fprintf(os.Stderr, "%s:", flagName)
		ps, err := gopass.GetPasswdMasked()
		if err != nil {
			return err
		}

		if with {
			fmt.Fprintf(os.Stderr, "confirm %s:", flagName)
			ps1, err := gopass.GetPasswdMasked()
			if err != nil {
				return err
			}

			if !bytes.Equal(ps1, ps) {
				return fmt.Errorf("%s not equal", flagName)
			}
		}

		return flag.Value.Set(string(ps))
	}
	return nil
}

func (c *Command) Execute() error {
	return c.cmd.Execute()
}

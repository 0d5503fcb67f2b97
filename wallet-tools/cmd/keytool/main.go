package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"keykit/wallet-base/cmd"
	"keykit/wallet-base/util"
	"keykit/wallet-base/viper"
	"keykit/wallet-tools/base/crypto/key"
	"keykit/wallet-tools/base/keyinfo"
	"keykit/wallet-tools/base/network"
)

// app is the state shared by all sub-commands, filled in before each run.
type app struct {
	configFile  string
	networkName string
	upper       bool
	logLevel    string

	params *network.Params
	ctx    *key.Context
}

func main() {
	defer util.DeferRecover("keytool", func(error) { os.Exit(2) })()

	if err := newRootCommand().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cmd.Command {
	a := &app{}

	root := cmd.NewGroup("keytool", "bitcoin style key, wif and address tool.",
		a.base58Command(),
		a.checksumCommand(),
		a.inspectCommand(),
		a.wifCommand(),
		a.pubkeyCommand(),
		a.addressCommand(),
		a.combineCommand(),
		a.pairCommand(),
		a.brainCommand(),
		a.burnCommand(),
		a.randomCommand(),
		a.hashCommand(),
		a.batchCommand(),
		a.networksCommand(),
	)
	root.PreRun(a.setup)

	root.Flags().StringVarP(&a.configFile, "config", "c", "", "the config file")
	root.Flags().StringVarP(&a.networkName, "network", "n", "BTC", "the network class: "+strings.Join(network.AllClasses(), ","))
	root.Flags().BoolVarP(&a.upper, "upper", "u", false, "print hex in upper case")
	root.Flags().StringVar(&a.logLevel, "loglevel", "info", "the log level")
	return root
}

func (a *app) setup(c *cmd.Command) error {
	if err := viper.Load(a.configFile); err != nil {
		return err
	}

	flags := c.Flags()
	if !flags.Changed("loglevel") {
		a.logLevel = viper.GetString("log.level", a.logLevel)
	}
	if !flags.Changed("network") {
		a.networkName = viper.GetString("network", a.networkName)
	}
	if !flags.Changed("upper") {
		a.upper = viper.GetBool("uppercase", a.upper)
	}

	err := util.InitLogger(a.logLevel, viper.GetString("log.path", ""), viper.GetString("log.file", "keytool.log"))
	if err != nil {
		return err
	}

	if len(a.configFile) > 0 {
		if err := network.LoadConfig("networks"); err != nil {
			return err
		}
	}

	a.params, err = network.MustFind(a.networkName)
	if err != nil {
		return err
	}

	a.ctx = key.DefaultContext()
	log.Debugf("keytool network %s, address prefix %x, wif prefix %x", a.params.Class, a.params.AddressPrefix, a.params.WIFPrefix)
	return nil
}

func (a *app) reporter() *keyinfo.Reporter {
	return keyinfo.NewReporter(a.ctx, a.params, a.upper)
}

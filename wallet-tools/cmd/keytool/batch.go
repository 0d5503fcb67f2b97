package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"keykit/wallet-base/cmd"
	"keykit/wallet-base/viper"
	"keykit/wallet-tools/base/keyinfo"
)

func (a *app) batchCommand() *cmd.Command {
	var (
		file    string
		workers int
	)
	c := cmd.New(
		"batch",
		"derive wifs and addresses for a list of private keys, one hex or wif per line.",
		"./keytool batch -f keys.txt -w 8",
		func(c *cmd.Command, args []string) error {
			if !c.CobraCmd().Flags().Changed("workers") {
				workers = viper.GetInt("batch.workers", workers)
			}

			in := c.CobraCmd().InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			keys, err := readKeys(in)
			if err != nil {
				return err
			}

			start := time.Now()
			infos, err := a.reporter().DescribeAll(context.Background(), keys, workers)
			if err != nil {
				return err
			}

			for _, info := range infos {
				fmt.Fprintf(c.Out(), "%s\t%s\t%s\t%s\n", info.PrivateKey, info.CompressedWIF, info.Address, info.CompressedAddress)
			}
			log.Infof("batch derived %d keys with %d workers in %v", len(infos), workers, time.Since(start))
			return nil
		}).Args(cobra.NoArgs)
	c.Flags().StringVarP(&file, "file", "f", "-", "the key file, - for stdin")
	c.Flags().IntVarP(&workers, "workers", "w", 4, "the number of workers")
	return c
}

func readKeys(r io.Reader) ([][]byte, error) {
	var (
		keys    [][]byte
		lineNum int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}

		k, err := keyinfo.ParseKey(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		keys = append(keys, k)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

package viper

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	extConfigsKey = "extConfigs"
)

// MergeExtIfNecessary merges the config files listed under extConfigs.
// A missing or broken file is logged and skipped.
func MergeExtIfNecessary() error {
	exts := GetStringSlice(extConfigsKey, nil)
	for _, ext := range exts {
		f, err := os.Open(ext)
		if err != nil {
			log.Errorf("merge config %s failed, %v", ext, err)
			continue
		}

		err = viper.MergeConfig(f)
		f.Close()
		if err != nil {
			log.Errorf("merge config %s failed, %v", ext, err)
		}
	}
	return nil
}

package viper

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Load reads the config file if one is given, merges its extConfigs and binds
// KEYTOOL_* environment variables, e.g. KEYTOOL_LOG_LEVEL for log.level.
func Load(file string) error {
	viper.SetEnvPrefix("keytool")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if len(file) == 0 {
		return nil
	}

	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read config %s", file)
	}
	return MergeExtIfNecessary()
}

func GetInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	return defaultValue
}

func GetString(key string, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return defaultValue
}

func GetStringSlice(key string, defaultValue []string) []string {
	if viper.IsSet(key) {
		return viper.GetStringSlice(key)
	}
	return defaultValue
}

func GetStringMap(key string, defaultValue map[string]interface{}) map[string]interface{} {
	if viper.IsSet(key) {
		return viper.GetStringMap(key)
	}
	return defaultValue
}

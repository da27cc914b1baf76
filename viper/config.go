// Package viper loads compass configuration from a TOML file and COMPASS_
// environment variables using spf13/viper.
package viper

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/compass"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g. COMPASS_BASE_URL.
const EnvPrefix = "COMPASS"

// ConfigEnv names the environment variable holding an explicit config path.
const ConfigEnv = "COMPASS_CONFIG"

// Load reads configuration from path, or when path is empty from
// $COMPASS_CONFIG or ~/.config/compass/config.toml. A missing default file
// is not an error; a missing explicit file is. Environment variables
// override file values. The result is not validated, so callers can apply
// flag overrides first.
func Load(path string) (compass.Config, error) {
	v := viper.New()

	v.SetDefault("base_url", compass.DefaultBaseURL)
	v.SetDefault("timeout", "0s")
	v.SetDefault("log_level", compass.DefaultLogLevel)
	v.SetDefault("log_file", "")
	v.SetDefault("style", compass.DefaultStyle)
	v.SetDefault("word_wrap", compass.DefaultWordWrap)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(ConfigEnv)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "compass"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return compass.Config{}, compass.Errorf(compass.EINVALID, "read config: %s", err)
		}
	}

	var c compass.Config
	if err := v.Unmarshal(&c); err != nil {
		return compass.Config{}, compass.Errorf(compass.EINVALID, "decode config: %s", err)
	}
	return c, nil
}

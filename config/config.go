package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/cordialsys/aoc/config/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var noSuchFile = "no such file"
var notFoundIn = "not found in"

func getViper() *viper.Viper {
	v := viper.New()
	// config file is config.yaml
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// If the config location env is set, use that.
	if path := os.Getenv(constants.ConfigEnv); path != "" {
		v.SetConfigFile(path)
	}

	// otherwise, prioritize current path or parent
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	// Lastly, check home dir
	v.AddConfigPath(constants.DefaultHome)

	return v
}

// RequireConfig loads config.yaml from AOC_CONFIG, the current directory, its
// parent or AOC_HOME.
//
// If a section is given only that key is treated as the root. When defaults
// are given, a missing file is not an error and anything the file leaves out
// is taken from the defaults.
func RequireConfig(section string, unmarshalDst interface{}, defaults interface{}) error {
	return RequireConfigWithViper(getViper(), section, unmarshalDst, defaults)
}

func RequireConfigWithViper(v *viper.Viper, section string, unmarshalDst interface{}, defaults interface{}) error {
	err := v.ReadInConfig()
	if err != nil {
		msg := strings.ToLower(err.Error())
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if defaults != nil && (notFound || strings.Contains(msg, noSuchFile) || strings.Contains(msg, notFoundIn)) {
			logrus.Debug("no configuration file found, using defaults")
			// use the defaults by serializing and deserializing
			bz, err := yaml.Marshal(defaults)
			if err != nil {
				return err
			}
			return yaml.Unmarshal(bz, unmarshalDst)
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}
	logrus.WithField("config", v.ConfigFileUsed()).Debug("loaded configuration")

	// viper does not support partial deserialization and does not know about
	// yaml marshalers, so re-serialize and parse again
	settings := v.AllSettings()
	if section != "" {
		settings = v.GetStringMap(section)
	}
	bz, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	if err = yaml.Unmarshal(bz, unmarshalDst); err != nil {
		return err
	}

	if defaults != nil {
		return ApplyDefaults(defaults, unmarshalDst, unmarshalDst)
	}
	return nil
}

// Package config holds app wide settings unmarshalled from viper, which merges
// flags, RNACENTRAL_* environment variables (a local .env is loaded first) and
// an optional rnacentral.yaml.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rnacentral/rnacentral-go/pkg/model"
)

const EnvPrefix = "RNACENTRAL"

type Config struct {
	// path to the sqlite database
	DB string `mapstructure:"db"`
	// address the API listens on
	Listen string `mapstructure:"listen"`
	// zap level name
	LogLevel string `mapstructure:"log-level"`
	// request log level, usually quieter than LogLevel
	RequestLogLevel string `mapstructure:"request-log-level"`
	// weights and overrides for sequence descriptions
	Description model.DescriptionConfig `mapstructure:"description"`
}

// SetDefaults registers the defaults on v.
func SetDefaults(v *viper.Viper) {
	defaults := model.DefaultDescriptionConfig()

	v.SetDefault("db", "./data/rnacentral.db")
	v.SetDefault("listen", "0.0.0.0:8080")
	v.SetDefault("log-level", "info")
	v.SetDefault("request-log-level", "debug")
	v.SetDefault("description.weights.publication", defaults.Weights.Publication)
	v.SetDefault("description.weights.genome", defaults.Weights.Genome)
	v.SetDefault("description.weights.product", defaults.Weights.Product)
	v.SetDefault("description.weights.gene", defaults.Weights.Gene)
	v.SetDefault("description.weights.note", defaults.Weights.Note)
	v.SetDefault("description.weights.rfam-full-alignment", defaults.Weights.RfamFullAlignment)
	v.SetDefault("description.weights.misc-rna", defaults.Weights.MiscRNA)
	v.SetDefault("description.overrides", defaults.Overrides)
}

// Prepare loads .env (if any), then points v at the environment and the
// optional config file.
func Prepare(v *viper.Viper, configFile string) (dotenv bool, err error) {
	dotenv = godotenv.Load() == nil

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("rnacentral")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing || configFile != "" {
			return dotenv, fmt.Errorf("read config: %w", err)
		}
	}
	return dotenv, nil
}

// New unmarshals the current viper settings.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}

	// viper lower-cases map keys; upis are upper case
	overrides := make(map[string]string, len(c.Description.Overrides))
	for upi, description := range c.Description.Overrides {
		overrides[strings.ToUpper(upi)] = description
	}
	c.Description.Overrides = overrides

	return c, nil
}

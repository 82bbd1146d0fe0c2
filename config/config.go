package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyAmount    = "amount"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Config for the fxdemo command
type Config struct {
	// Amount converted by the demo in every currency
	Amount float64 `mapstructure:"amount"`

	// LogLevel one of debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	// LogFormat logfmt or json
	LogFormat string `mapstructure:"log_format"`
}

// New returns a viper instance with defaults set, reading FX_* environment variables.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAmount, 100.0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "logfmt")

	v.SetEnvPrefix("FX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads envFile into the environment, if it exists, and decodes v.
// Variables already set in the environment win over the file.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file [%v]: %w", envFile, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	switch config.LogFormat {
	case "logfmt", "json":
	default:
		return nil, fmt.Errorf("log format [%v]: must be logfmt or json", config.LogFormat)
	}

	return &config, nil
}

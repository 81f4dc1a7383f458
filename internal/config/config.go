// Package config loads tool defaults from an optional .env file and
// TRIPSTAT_-prefixed environment variables. Flags always win; these values
// only fill in what the command line leaves unset.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix, e.g. TRIPSTAT_INPUT.
const envPrefix = "TRIPSTAT_"

// Config holds the tool defaults.
type Config struct {
	// Input is the default dataset path or glob pattern.
	Input string `mapstructure:"input"`
	// TimeColumn is the default timestamp column for window filters.
	TimeColumn string `mapstructure:"time_column"`
	// LogLevel is DEBUG, INFO, WARN or ERROR.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is text or json.
	LogFormat string `mapstructure:"log_format"`
}

// Load reads the optional .env file, overlays prefixed environment
// variables, and fills unset fields with built-in defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("time_column", "tpep_pickup_datetime")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("log_format", "text")

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		// The .env file is optional; only a malformed one is an error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	for _, envStr := range os.Environ() {
		pair := strings.SplitN(envStr, "=", 2)
		key, value := pair[0], pair[1]
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		// TRIPSTAT_TIME_COLUMN -> time_column
		propKey := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		v.Set(propKey, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

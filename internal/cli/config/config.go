// Package config loads the configuration of the characteristic command.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents the command configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Color bool        `mapstructure:"color"`
	Index IndexConfig `mapstructure:"index"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// IndexConfig represents sorted set configuration.
type IndexConfig struct {
	Degree int `mapstructure:"degree"`
}

// EnvPrefix prefixes the environment variables that override the
// configuration, e.g. CHARACTERISTIC_LOG_LEVEL.
const EnvPrefix = "CHARACTERISTIC"

// Load loads the configuration from the file at path, or from
// characteristic.yaml in the working directory if path is empty. A missing
// default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("color", true)
	v.SetDefault("index.degree", 32)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("characteristic")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LogLevel returns the configured log level.
func (cfg *Config) LogLevel() (level zapcore.Level) {
	// validated on load
	_ = level.UnmarshalText([]byte(cfg.Log.Level))
	return
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("log.level is invalid: %w", err)
	}
	if cfg.Index.Degree < 2 {
		return fmt.Errorf("index.degree must be at least 2, got: %d", cfg.Index.Degree)
	}
	return nil
}

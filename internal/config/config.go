package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"vsmsummary-generator/internal/vsmconfig"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "VSMSUMMARY"

// Config holds all CLI configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Derive DeriveConfig `mapstructure:"derive"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls where and how configs are written.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
	Class  string `mapstructure:"class"`
	Stdout bool   `mapstructure:"stdout"`
}

// DeriveConfig holds derivation settings.
type DeriveConfig struct {
	Validate bool `mapstructure:"validate"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var defaults = map[string]any{
	"output.dir":      ".",
	"output.format":   string(vsmconfig.FormatCfg),
	"output.class":    "",
	"output.stdout":   false,
	"derive.validate": true,
	"log.level":       "info",
	"log.format":      "text",
}

// Load reads configuration from environment variables with the VSMSUMMARY_
// prefix. Variables in envFiles are loaded first without overriding the
// environment; missing files are ignored. With no envFiles, ".env" is tried.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)

		// Nested keys are only picked up by Unmarshal when bound explicitly.
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Check validates the settings.
func (c *Config) Check() error {
	if _, err := vsmconfig.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q (want text or json)", c.Log.Format)
	}

	return nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() vsmconfig.Format {
	f, _ := vsmconfig.ParseFormat(c.Output.Format)
	return f
}

// Package config loads the dataset location and logging settings.
//
// Values are layered: defaults, then an optional YAML file, then
// WHALES_DATASET_* environment variables. Command-line flags are applied on
// top by the caller.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvRoot     = "WHALES_DATASET_ROOT"
	EnvVariant  = "WHALES_DATASET_VARIANT"
	EnvLogLevel = "WHALES_DATASET_LOG_LEVEL"
)

// Config holds the settings shared by every subcommand.
type Config struct {
	Root     string `yaml:"root"`
	Variant  string `yaml:"variant"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Root:     ".",
		Variant:  "line_level",
		LogLevel: "info",
	}
}

// Load reads a YAML config file on top of the defaults. Keys absent from the
// file keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. Empty variables are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvRoot); v != "" {
		c.Root = v
	}
	if v := os.Getenv(EnvVariant); v != "" {
		c.Variant = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Debug reports whether debug logging is enabled.
func (c Config) Debug() bool {
	return strings.EqualFold(strings.TrimSpace(c.LogLevel), "debug")
}

// Package config loads the optional YAML configuration file and
// applies defaults. Flags set on the command line win over file
// values; the merge happens in internal/cli.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file-configurable surface of the wizard.
type Config struct {
	Redis  RedisConfig  `yaml:"redis"`
	Locale LocaleConfig `yaml:"locale"`
}

// RedisConfig locates the persistent answer store.
type RedisConfig struct {
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// LocaleConfig overrides the confirmation token sets. The ordinal
// rule is code, not data, and stays with the locale implementation.
type LocaleConfig struct {
	YesTokens []string `yaml:"yes"`
	NoTokens  []string `yaml:"no"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "fleetform:",
		},
	}
}

// Load reads path and overlays it on the defaults. A missing file is
// an error; callers skip Load entirely when no path was given.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

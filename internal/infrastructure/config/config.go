// Package config provides optional on-disk defaults for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for riddler configuration.
	DefaultConfigDir = ".riddler"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds CLI defaults (read-only after load).
type Config struct {
	Defaults Defaults `yaml:"defaults,omitempty"`
}

// Defaults mirrors the generate command's flags. Flags set on the command
// line win over these values.
type Defaults struct {
	People     int    `yaml:"people,omitempty"`
	Length     int    `yaml:"length,omitempty"`
	Difficulty string `yaml:"difficulty,omitempty"`
	Relations  string `yaml:"relations,omitempty"`
	Seating    string `yaml:"seating,omitempty"`
	Format     string `yaml:"format,omitempty"`
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Defaults: Defaults{
			People:     5,
			Length:     2,
			Difficulty: "low",
			Relations:  "auto",
			Format:     "json",
		},
	}
}

// Load reads .riddler/config.yaml under basePath, overlaying it on the
// built-in defaults. A missing file is not an error: the generator is
// self-contained and the file only customizes defaults.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to .riddler/config.yaml under basePath, creating
// the directory when needed.
func Save(basePath string, cfg *Config) error {
	dir := filepath.Join(basePath, DefaultConfigDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	configFile := filepath.Join(dir, DefaultConfigFile)
	if err := os.WriteFile(configFile, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Package config loads optional YAML defaults for the htmltab command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/htmltab/guard"
)

// Formats lists the output formats the command accepts.
var Formats = []string{"csv", "tsv", "json", "markdown"}

// Config holds flag defaults read from a YAML file. Every field is
// optional; flags given on the command line win over the file.
type Config struct {
	Format   string `yaml:"format"`
	Hardened bool   `yaml:"hardened"`
	Selector string `yaml:"selector"`
	Trim     bool   `yaml:"trim"`
	Unescape bool   `yaml:"unescape"`
}

// Default returns the built-in defaults used when no config file exists.
func Default() Config {
	return Config{Format: "csv"}
}

// Load reads and validates a config file. An empty path returns the
// defaults; a missing or invalid file is an error, since the user asked
// for it explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints via guard clauses.
func (c Config) Validate() error {
	if _, err := guard.OneOf(c.Format, Formats, "format"); err != nil {
		return err
	}
	return nil
}

// Package config loads the optional YAML configuration file. Defaults are
// populated first and the file, when present, overrides them; unknown keys
// are rejected.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v2"
)

// Config holds the user-tunable knobs of the shell.
type Config struct {
	Prompt struct {
		Label string `yaml:"label"`
		Color bool   `yaml:"color"`
	} `yaml:"prompt"`
	History struct {
		File  string `yaml:"file"`
		Limit int    `yaml:"limit"`
	} `yaml:"history"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Prompt.Label = "myshell"
	cfg.Prompt.Color = true
	cfg.History.File = filepath.Join(xdg.DataHome, "myshell", "history")
	cfg.History.Limit = 500
	return cfg
}

// DefaultPath is where the shell looks for a config file when none is
// given on the command line. A missing file there is not an error.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "myshell", "config.yaml")
}

// Load parses the YAML file at path over the defaults. An empty path
// yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(raw, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.History.Limit < 0 {
		cfg.History.Limit = 0
	}
	return cfg, nil
}

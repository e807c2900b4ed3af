// Package config loads CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls CLI behavior. Zero fields fall back to defaults.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Register is the register shown by default.
	Register string `yaml:"register"`
	// ShowDepth bounds how deep nested groups are flattened for
	// display; 0 means unbounded.
	ShowDepth int `yaml:"show_depth"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Register: ".",
	}
}

// Load reads path and overlays it onto Default. A missing file is not
// an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Register == "" {
		cfg.Register = "."
	}
	if cfg.ShowDepth < 0 {
		return cfg, fmt.Errorf("config %s: show_depth must be >= 0", path)
	}
	return cfg, nil
}

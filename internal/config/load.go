package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration. Defaults come first, then a
// config file if one is found, then CLI flags on top.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = discoverConfig()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// discoverConfig checks the working directory and then the per-user
// config directory for a config.yaml.
func discoverConfig() string {
	for _, path := range []string{
		"config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user configuration directory for this
// platform.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	name := "tablescape"
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		name = "Tablescape"
	}
	return filepath.Join(base, name)
}

// loadFromFile merges the YAML at path over the values already in cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

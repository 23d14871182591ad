// Package config provides application settings stored as YAML in the
// config directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dsw/internal/domain"

	"gopkg.in/yaml.v3"
)

// Config holds global application settings
type Config struct {
	DefaultManager domain.PackageManager `yaml:"-"`
	ManagerStr     string                `yaml:"default_manager"`
	OutputDir      string                `yaml:"output_dir"`
	Keybindings    string                `yaml:"keybindings"`
}

// Load reads configuration from the given directory, returning defaults
// when no config file exists.
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		DefaultManager: domain.Pacman,
		Keybindings:    "vim",
	}

	configPath := filepath.Join(configDir, "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // Return defaults
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.ManagerStr != "" {
		manager, err := domain.ParsePackageManager(cfg.ManagerStr)
		if err != nil {
			return nil, fmt.Errorf("%w: default_manager %q: %w", domain.ErrInvalidConfig, cfg.ManagerStr, err)
		}
		cfg.DefaultManager = manager
	}

	if cfg.Keybindings == "" {
		cfg.Keybindings = "vim"
	}

	return cfg, nil
}

// Save writes configuration to the given directory
func (c *Config) Save(configDir string) error {
	c.ManagerStr = c.DefaultManager.String()

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

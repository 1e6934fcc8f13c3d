// Package config loads the YAML application configuration. A missing config
// file is not an error: defaults apply and CLI flags override.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/levos/internal/constants"
)

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API server.
	Listen string `yaml:"listen"`

	// Storage selects the persistence backend: "sqlite" (default) or "json".
	Storage string `yaml:"storage"`

	// DBPath is the storage file location. Empty means
	// ~/.config/levos/levos.db (or .json for the json backend).
	DBPath string `yaml:"db_path"`

	// AllowedOrigins lists CORS origins for the API. Empty allows any,
	// which suits the single-user local deployment.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Debug widens log level and tees logs to stderr.
	Debug bool `yaml:"debug"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		Listen:  constants.DefaultListenAddr,
		Storage: "sqlite",
	}
}

// Load reads the config file at path, applying defaults for absent fields.
// A nonexistent file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = constants.DefaultListenAddr
	}
	if cfg.Storage == "" {
		cfg.Storage = "sqlite"
	}
	return cfg, nil
}

// ConfigDir returns the levos config directory under the user's home.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, constants.DefaultConfigDir), nil
}

// StoragePath resolves the effective storage file location.
func (c *Config) StoragePath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if c.Storage == "json" {
		return filepath.Join(dir, "levos.json"), nil
	}
	return filepath.Join(dir, constants.DefaultDBFile), nil
}

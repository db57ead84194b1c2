// Package config loads the application configuration from a YAML file
// with sensible defaults for every field.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings.
type Config struct {
	// DataDir is where the JSON store and uploads live.
	DataDir string `yaml:"data_dir"`

	// ReportsDir receives exported documents written to disk.
	ReportsDir string `yaml:"reports_dir"`

	Branding Branding `yaml:"branding"`
	Metrics  Metrics  `yaml:"metrics"`
}

// Branding customizes the fixed strings on generated documents.
type Branding struct {
	Organization    string `yaml:"organization"`
	Badge           string `yaml:"badge"`
	Copyright       string `yaml:"copyright"`
	Confidentiality string `yaml:"confidentiality"`
	LogoPath        string `yaml:"logo_path"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		ReportsDir: "reports",
		Metrics: Metrics{
			Port: 9090,
			Path: "/metrics",
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", filepath.Base(path), err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir must not be empty")
	}
	if c.ReportsDir == "" {
		return fmt.Errorf("config: reports_dir must not be empty")
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("config: invalid metrics port %d", c.Metrics.Port)
	}
	return nil
}

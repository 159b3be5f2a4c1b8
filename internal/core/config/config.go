// Package config handles configuration loading and validation for rekanban.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	GitHub  GitHubConfig  `yaml:"github"`
	Project ProjectConfig `yaml:"project"`
	DataDir string        `yaml:"-"` // set by caller, not from config file
}

// APIConfig locates the backend relay.
type APIConfig struct {
	// BaseURL is the relay functions base, e.g.
	// https://example.supabase.co/functions/v1. May be empty; outbound
	// calls then fail with a configuration error.
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each outbound call and the generation wait.
	Timeout time.Duration `yaml:"timeout"`
}

// GitHubConfig identifies the app installation and filters its repositories.
type GitHubConfig struct {
	InstallationID int64 `yaml:"installation_id"`
	// Include holds doublestar patterns matched against "owner/repo"
	// full names. Empty means include everything.
	Include []string `yaml:"include"`
}

// ProjectConfig carries intake defaults.
type ProjectConfig struct {
	Title string `yaml:"title"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 45 * time.Second,
		},
	}
}

// Load reads the config file at configPath, applying defaults for unset
// values. A missing file is not an error; defaults are returned.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.API.Timeout == 0 {
		c.API.Timeout = defaults.API.Timeout
	}
}

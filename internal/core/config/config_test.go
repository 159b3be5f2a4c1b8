package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/data")
		require.NoError(t, err)

		assert.Equal(t, 45*time.Second, cfg.API.Timeout)
		assert.Empty(t, cfg.API.BaseURL)
		assert.Equal(t, "/data", cfg.DataDir)
	})

	t.Run("parses full config", func(t *testing.T) {
		path := writeConfig(t, `
api:
  base_url: https://example.supabase.co/functions/v1
  timeout: 30s
github:
  installation_id: 987
  include:
    - "acme/*"
project:
  title: Hackathon Board
`)

		cfg, err := Load(path, "/data")
		require.NoError(t, err)

		assert.Equal(t, "https://example.supabase.co/functions/v1", cfg.API.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.API.Timeout)
		assert.EqualValues(t, 987, cfg.GitHub.InstallationID)
		assert.Equal(t, []string{"acme/*"}, cfg.GitHub.Include)
		assert.Equal(t, "Hackathon Board", cfg.Project.Title)
	})

	t.Run("zero timeout falls back to default", func(t *testing.T) {
		path := writeConfig(t, `api: {base_url: "https://x.test"}`)

		cfg, err := Load(path, "")
		require.NoError(t, err)
		assert.Equal(t, 45*time.Second, cfg.API.Timeout)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		path := writeConfig(t, "api: [not a map")

		_, err := Load(path, "")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mut     func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"empty base url allowed", func(c *Config) { c.API.BaseURL = "" }, false},
		{"bad scheme rejected", func(c *Config) { c.API.BaseURL = "ftp://x" }, true},
		{"negative timeout rejected", func(c *Config) { c.API.Timeout = -time.Second }, true},
		{"negative installation id rejected", func(c *Config) { c.GitHub.InstallationID = -1 }, true},
		{"valid include pattern", func(c *Config) { c.GitHub.Include = []string{"acme/**"} }, false},
		{"empty include pattern rejected", func(c *Config) { c.GitHub.Include = []string{"  "} }, true},
		{"unbalanced include pattern rejected", func(c *Config) { c.GitHub.Include = []string{"acme/[oops"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, domain.ThemeLight, cfg.ThemeValue())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.UI.Theme = "dark"
	cfg.API.BaseURL = "http://127.0.0.1:9999"
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[ui]")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, domain.ThemeDark, loaded.ThemeValue())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"dark\"\n"), 0600))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultUsername, cfg.Login.Username)
	assert.Equal(t, DefaultListHeight, cfg.UI.ListHeight)
}

func TestLoadFromPathErrors(t *testing.T) {
	dir := t.TempDir()
	svc := NewConfigServiceAt(filepath.Join(dir, "config.toml"))

	_, err := svc.LoadFromPath(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte("version = = 1"), 0600))
	_, err = svc.LoadFromPath(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("[ui]\ntheme = \"sepia\"\n"), 0600))
	_, err = svc.LoadFromPath(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ui.theme")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unknown theme", func(c *Config) { c.UI.Theme = "blue" }, "ui.theme"},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, "api.base_url must not be empty"},
		{"relative base url", func(c *Config) { c.API.BaseURL = "dummyjson.com" }, "not an absolute URL"},
		{"zero expiry", func(c *Config) { c.API.ExpiresInMins = 0 }, "api.expires_in_mins"},
		{"negative list height", func(c *Config) { c.UI.ListHeight = -1 }, "ui.list_height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

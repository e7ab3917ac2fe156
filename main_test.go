package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/internal/config"
)

func TestLoadOrCreateConfigWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := config.NewConfigServiceAt(path)

	cfg, created, err := loadOrCreateConfig(svc)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, config.DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	again, created, err := loadOrCreateConfig(svc)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateConfigKeepsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \n"), 0600))

	_, _, err := loadOrCreateConfig(config.NewConfigServiceAt(path))
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "version = \n", string(data))
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		check   func(t *testing.T, cfg *config.Config)
		wantErr bool
	}{
		{
			name: "no overrides",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, config.DefaultConfig(), cfg)
			},
		},
		{
			name: "all overrides",
			opts: options{theme: "DARK", baseURL: "http://localhost:9000", logFile: "/tmp/rb.log"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "dark", cfg.UI.Theme)
				assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
				assert.Equal(t, "/tmp/rb.log", cfg.LogFile)
			},
		},
		{name: "unknown theme", opts: options{theme: "sepia"}, wantErr: true},
		{name: "relative base url", opts: options{baseURL: "dummyjson.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			err := applyOverrides(cfg, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := rootCmd()
	for _, name := range []string{"config", "theme", "base-url", "log-file"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)

	version, _, err := cmd.Find([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "version", version.Name())
}

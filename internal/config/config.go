package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"recipebook/internal/domain"
)

const (
	DefaultBaseURL       = "https://dummyjson.com"
	DefaultLogFile       = "recipebook.log"
	DefaultUsername      = "emilys"
	DefaultPassword      = "emilyspass"
	DefaultExpiresInMins = 30
	DefaultListHeight    = 12
)

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	LogFile string        `toml:"log_file"`
	API     APISettings   `toml:"api"`
	Login   LoginSettings `toml:"login"`
	UI      UISettings    `toml:"ui"`
}

// APISettings configures the remote recipe service
type APISettings struct {
	BaseURL       string `toml:"base_url"`
	ExpiresInMins int    `toml:"expires_in_mins"`
}

// LoginSettings holds the credentials submitted when the login form is left blank
type LoginSettings struct {
	Username string `toml:"username"`
	Password string `toml:"password"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Theme      string `toml:"theme"`
	ListHeight int    `toml:"list_height"` // recipe rows shown at once
}

// ThemeValue returns the configured theme
func (c *Config) ThemeValue() domain.Theme {
	t, err := domain.ParseTheme(c.UI.Theme)
	if err != nil {
		return domain.ThemeLight
	}
	return t
}

// Validate checks the configuration for values the client cannot run with
func (c *Config) Validate() error {
	var errs []error
	if _, err := domain.ParseTheme(c.UI.Theme); err != nil {
		errs = append(errs, fmt.Errorf("ui.theme: %w", err))
	}
	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url must not be empty"))
	} else if u, err := url.Parse(c.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url %q is not an absolute URL", c.API.BaseURL))
	}
	if c.API.ExpiresInMins <= 0 {
		errs = append(errs, fmt.Errorf("api.expires_in_mins must be positive, got %d", c.API.ExpiresInMins))
	}
	if c.UI.ListHeight <= 0 {
		errs = append(errs, fmt.Errorf("ui.list_height must be positive, got %d", c.UI.ListHeight))
	}
	return errors.Join(errs...)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "recipebook", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: DefaultLogFile,
		API: APISettings{
			BaseURL:       DefaultBaseURL,
			ExpiresInMins: DefaultExpiresInMins,
		},
		Login: LoginSettings{
			Username: DefaultUsername,
			Password: DefaultPassword,
		},
		UI: UISettings{
			Theme:      string(domain.ThemeLight),
			ListHeight: DefaultListHeight,
		},
	}
}

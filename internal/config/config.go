package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/thenoetrevino/tagdo/internal/storage"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings   `yaml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme"`
	Storage     StorageConfig `yaml:"storage"`
	Tags        TagsConfig    `yaml:"tags"`
}

// StorageConfig controls where session storage lives and how long it lasts
type StorageConfig struct {
	// Path of the session database; empty means ~/.tagdo/session.db
	Path string `yaml:"path"`
	// SessionTTL is a Go duration ("12h", "90m"); "off" disables pruning
	SessionTTL string `yaml:"session_ttl"`
}

// TagsConfig controls the tag selector for new tasks
type TagsConfig struct {
	// ResetAfterAdd returns the selector to NONE after each add instead of
	// keeping the just-used tag
	ResetAfterAdd bool `yaml:"reset_after_add"`
}

// SessionTTLDuration parses SessionTTL. Negative means pruning is disabled.
func (s StorageConfig) SessionTTLDuration() (time.Duration, error) {
	switch s.SessionTTL {
	case "":
		return storage.DefaultSessionTTL, nil
	case "off":
		return -1, nil
	}
	d, err := time.ParseDuration(s.SessionTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid storage.session_ttl %q: %w", s.SessionTTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid storage.session_ttl %q: must be positive", s.SessionTTL)
	}
	return d, nil
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	return config
}

// loadThemeFile loads and merges theme from TAGDO_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("TAGDO_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		if themeConfig.Theme.Preset != "" && themeConfig.Theme.Preset != config.ColorScheme.Preset {
			// A different preset replaces the base before overrides apply
			config.ColorScheme = ColorScheme{Preset: themeConfig.Theme.Preset}
			config.ColorScheme.ApplyDefaults()
		}
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	// Load theme from TAGDO_THEME_FILE if set
	loadThemeFile(&config)

	if _, err := config.Storage.SessionTTLDuration(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Path returns the location Load reads and Save writes
func Path() (string, error) {
	return getConfigPath()
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tagdo", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "tagdo", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

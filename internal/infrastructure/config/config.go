// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration and state.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultSQLiteFile is the default sqlite cache file name.
	DefaultSQLiteFile = "cache.db"
	// DefaultBadgerDir is the default badger cache directory name.
	DefaultBadgerDir = "badger"
	// DefaultLogFile is where browse writes its log.
	DefaultLogFile = "dex.log"
)

// Cache backends.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Config holds static configuration (read-only after init).
type Config struct {
	API     APIConfig     `yaml:"api"`
	Catalog CatalogConfig `yaml:"catalog"`
	Cache   CacheConfig   `yaml:"cache"`
	UI      UIConfig      `yaml:"ui"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds configuration for the upstream catalog API.
type APIConfig struct {
	BaseURL     string        `yaml:"base_url"`
	SpriteURL   string        `yaml:"sprite_url"`
	ArtworkURL  string        `yaml:"artwork_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Concurrency int           `yaml:"concurrency"`
}

// CatalogConfig holds listing and detail settings.
type CatalogConfig struct {
	Limit      int    `yaml:"limit"`
	PageSize   int    `yaml:"page_size"`
	ScrollStep int    `yaml:"scroll_step"`
	Language   string `yaml:"language"`
}

// CacheConfig selects the local cache backend.
type CacheConfig struct {
	Backend string `yaml:"backend"`
	// Path overrides the backend's default location under .dex.
	Path string `yaml:"path,omitempty"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:     "https://pokeapi.co/api/v2",
			SpriteURL:   "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon",
			ArtworkURL:  "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork",
			Timeout:     15 * time.Second,
			Concurrency: 16,
		},
		Catalog: CatalogConfig{
			Limit:      151,
			PageSize:   50,
			ScrollStep: 20,
			Language:   "es",
		},
		Cache: CacheConfig{
			Backend: BackendSQLite,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the .dex directory in the given path.
// A missing file yields the defaults.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(configFile)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("DEX_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if backend := os.Getenv("DEX_CACHE_BACKEND"); backend != "" {
		c.Cache.Backend = backend
	}
	if os.Getenv("DEX_DARK_MODE") == "1" {
		c.UI.DarkMode = true
	}
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	if c.Catalog.Limit <= 0 {
		return fmt.Errorf("catalog.limit must be positive, got %d", c.Catalog.Limit)
	}
	switch c.Cache.Backend {
	case BackendSQLite, BackendBadger, BackendMemory:
	default:
		return fmt.Errorf("unknown cache backend %q (want sqlite, badger or memory)", c.Cache.Backend)
	}
	return nil
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// CachePath returns where the configured backend keeps its data.
func (c *Config) CachePath(basePath string) string {
	if c.Cache.Path != "" {
		return c.Cache.Path
	}
	switch c.Cache.Backend {
	case BackendBadger:
		return filepath.Join(basePath, DefaultConfigDir, DefaultBadgerDir)
	case BackendMemory:
		return ""
	default:
		return filepath.Join(basePath, DefaultConfigDir, DefaultSQLiteFile)
	}
}

// LogFilePath returns the log file used by the interactive browser.
func (c *Config) LogFilePath(basePath string) string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultLogFile)
}

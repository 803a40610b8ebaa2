package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, 16, cfg.API.Concurrency)
	assert.Equal(t, 151, cfg.Catalog.Limit)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
	assert.Equal(t, 20, cfg.Catalog.ScrollStep)
	assert.Equal(t, "es", cfg.Catalog.Language)
	assert.Equal(t, BackendSQLite, cfg.Cache.Backend)
	assert.False(t, cfg.UI.DarkMode)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestConfigDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/proj", ".dex"), ConfigDir("/tmp/proj"))
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/proj", ".dex", "config.yaml"), ConfigFilePath("/tmp/proj"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Catalog, cfg.Catalog)
}

func TestLoad_DefaultYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	content := "catalog:\n  limit: 251\ncache:\n  backend: badger\n"
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 251, cfg.Catalog.Limit)
	assert.Equal(t, 50, cfg.Catalog.PageSize)
	assert.Equal(t, BackendBadger, cfg.Cache.Backend)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.API.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte("api: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DEX_API_URL", "http://localhost:8080/api/v2/")
	t.Setenv("DEX_CACHE_BACKEND", "memory")
	t.Setenv("DEX_DARK_MODE", "1")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v2", cfg.API.BaseURL)
	assert.Equal(t, BackendMemory, cfg.Cache.Backend)
	assert.True(t, cfg.UI.DarkMode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: "base_url"},
		{name: "zero limit", mutate: func(c *Config) { c.Catalog.Limit = 0 }, wantErr: "catalog.limit"},
		{name: "unknown backend", mutate: func(c *Config) { c.Cache.Backend = "redis" }, wantErr: "unknown cache backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCachePath(t *testing.T) {
	base := "/tmp/proj"
	tests := []struct {
		name     string
		backend  string
		path     string
		expected string
	}{
		{name: "sqlite default", backend: BackendSQLite, expected: filepath.Join(base, ".dex", "cache.db")},
		{name: "badger default", backend: BackendBadger, expected: filepath.Join(base, ".dex", "badger")},
		{name: "memory has no path", backend: BackendMemory, expected: ""},
		{name: "explicit path wins", backend: BackendSQLite, path: "/var/dex.db", expected: "/var/dex.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Cache.Backend = tt.backend
			cfg.Cache.Path = tt.path
			assert.Equal(t, tt.expected, cfg.CachePath(base))
		})
	}
}

func TestLogFilePath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("/p", ".dex", "dex.log"), cfg.LogFilePath("/p"))

	cfg.Log.File = "/var/log/dex.log"
	assert.Equal(t, "/var/log/dex.log", cfg.LogFilePath("/p"))
}

func TestWriteDefault_AlreadyExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	err := WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Catalog.Language = "en"
	cfg.UI.DarkMode = true

	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "en", loaded.Catalog.Language)
	assert.True(t, loaded.UI.DarkMode)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (PYOUTLINE_*), including those from rootDir/.env
// 2. Config file (.pyoutline/config.yml or .pyoutline/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	// Variables already set in the process win over .env entries.
	if err := godotenv.Load(filepath.Join(l.rootDir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()

	configDir := filepath.Join(l.rootDir, ".pyoutline")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("PYOUTLINE")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., PYOUTLINE_CACHE_MAX_ENTRIES)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("cache.max_entries")
	v.BindEnv("watch.debounce_ms")
	v.BindEnv("mcp.server_name")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("paths.include", defaults.Paths.Include)
	v.SetDefault("paths.ignore", defaults.Paths.Ignore)
	v.SetDefault("cache.max_entries", defaults.Cache.MaxEntries)
	v.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMs)
	v.SetDefault("mcp.server_name", defaults.MCP.ServerName)
}

// LoadConfigFromDir loads configuration from a specific directory.
func LoadConfigFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}

package config

// Config represents the complete pyoutline configuration.
// It can be loaded from .pyoutline/config.yml with environment variable overrides.
type Config struct {
	Paths PathsConfig `yaml:"paths" mapstructure:"paths"`
	Cache CacheConfig `yaml:"cache" mapstructure:"cache"`
	Watch WatchConfig `yaml:"watch" mapstructure:"watch"`
	MCP   MCPConfig   `yaml:"mcp" mapstructure:"mcp"`
}

// PathsConfig defines which files directory mode outlines and which it skips.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for Python files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to ignore
}

// CacheConfig bounds the in-memory outline cache.
type CacheConfig struct {
	MaxEntries int `yaml:"max_entries" mapstructure:"max_entries"`
}

// WatchConfig tunes the watch command.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms" mapstructure:"debounce_ms"` // quiet period before re-outlining
}

// MCPConfig configures the MCP stdio server.
type MCPConfig struct {
	ServerName string `yaml:"server_name" mapstructure:"server_name"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Include: []string{
				"**/*.py",
				"**/*.pyi",
			},
			Ignore: []string{
				".git/**",
				"__pycache__/**",
				"**/__pycache__/**",
				".venv/**",
				"venv/**",
				".tox/**",
				"build/**",
				"dist/**",
				"node_modules/**",
			},
		},
		Cache: CacheConfig{
			MaxEntries: 1024,
		},
		Watch: WatchConfig{
			DebounceMs: 300,
		},
		MCP: MCPConfig{
			ServerName: "pyoutline",
		},
	}
}

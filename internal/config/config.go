// Package config loads the optional dotagent.toml tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LogLevel specifies the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LogFormat specifies the log output format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// PathsConfig holds path configuration.
type PathsConfig struct {
	// Source overrides the source tree root. Relative paths are resolved
	// against the directory the config file was loaded from.
	Source string `toml:"source"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  LogLevel  `toml:"level"`
	Format LogFormat `toml:"format"`
}

// Config is the main configuration struct for dotagent.
type Config struct {
	Paths   PathsConfig   `toml:"paths"`
	Logging LoggingConfig `toml:"logging"`
}

// Filename is the config file dotagent looks for in the source tree root.
const Filename = "dotagent.toml"

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Load loads configuration from path, merging with defaults. A missing
// file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads dotagent.toml from dir, merging with defaults.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, Filename))
}

// SourceRoot returns the effective source tree root given the directory
// the tool was invoked from.
func (c *Config) SourceRoot(baseDir string) string {
	if c.Paths.Source == "" {
		return baseDir
	}
	if filepath.IsAbs(c.Paths.Source) {
		return c.Paths.Source
	}
	return filepath.Join(baseDir, c.Paths.Source)
}

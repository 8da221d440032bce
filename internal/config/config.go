// Package config handles configuration loading and defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultConfigFile = ".todo.toml"
	DefaultDataFile   = "todos.json"
	DefaultSQLiteFile = "todos.db"
	DefaultBackend    = "json"
	DefaultTheme      = "classic"
	DefaultLogLevel   = "warn"
)

// Config holds the full configuration for the todo CLI. All fields are
// optional in the file; flags override file values.
type Config struct {
	DataFile string `toml:"data_file"`
	Backend  string `toml:"backend"`  // json, memory or sqlite
	Theme    string `toml:"theme"`    // classic, neon or mono
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		DataFile: DefaultDataFile,
		Backend:  DefaultBackend,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads path, falling back to DefaultConfigFile in the working
// directory when path is empty. A missing default file is not an error;
// an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case "json", "memory", "sqlite":
	default:
		return fmt.Errorf("unknown backend %q (want json, memory or sqlite)", c.Backend)
	}
	return nil
}

// SQLitePath picks the database file for the sqlite backend. The JSON
// default name would be misleading for a database, so it maps to the
// sqlite default unless the user chose a name themselves.
func (c Config) SQLitePath() string {
	if c.DataFile == "" || c.DataFile == DefaultDataFile {
		return DefaultSQLiteFile
	}
	return c.DataFile
}

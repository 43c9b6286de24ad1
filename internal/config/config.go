// Package config loads the todos TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultTheme     = "classic"
	DefaultCharLimit = 200
	DefaultLogLevel  = "info"
)

// Config represents the config.toml file.
type Config struct {
	UI  UI  `toml:"ui"`
	Log Log `toml:"log"`
}

// UI contains rendering options.
type UI struct {
	// Theme is one of classic, neon or mono.
	Theme string `toml:"theme"`
	// Group splits replay output into pending and done sections.
	Group bool `toml:"group"`
	// CharLimit caps the length of form inputs. Zero or less means no limit.
	CharLimit int `toml:"char-limit"`
}

// Log contains logging options.
type Log struct {
	// File receives JSON log lines. Empty disables logging.
	File  string `toml:"file"`
	Level string `toml:"level"`
}

func Default() *Config {
	return &Config{
		UI:  UI{Theme: DefaultTheme, CharLimit: DefaultCharLimit},
		Log: Log{Level: DefaultLogLevel},
	}
}

// DefaultPath is ~/.config/todos/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todos", "config.toml"), nil
}

// Load reads path, or DefaultPath when path is empty. A missing default file
// yields Default(); a missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	return Parse(path, string(data))
}

// Parse decodes data and fills unset keys with defaults. name is used in
// error messages.
func Parse(name, data string) (*Config, error) {
	var cfg Config
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", name, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config file %s: unknown key %s", name, undecoded[0])
	}

	def := Default()
	if !meta.IsDefined("ui", "theme") {
		cfg.UI.Theme = def.UI.Theme
	}
	if !meta.IsDefined("ui", "char-limit") {
		cfg.UI.CharLimit = def.UI.CharLimit
	}
	if !meta.IsDefined("log", "level") {
		cfg.Log.Level = def.Log.Level
	}
	cfg.UI.Theme = strings.ToLower(strings.TrimSpace(cfg.UI.Theme))
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", name, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.UI.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("ui.theme: unknown theme %q", c.UI.Theme)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}

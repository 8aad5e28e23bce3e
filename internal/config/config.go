// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/db"
	"github.com/javiermolinar/twine/internal/logger"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Planner PlannerConfig `toml:"planner"`
	Drag    DragConfig    `toml:"drag"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig selects the KV backend.
type StorageConfig struct {
	Backend string `toml:"backend"` // "sqlite", "badger", "memory"
	Path    string `toml:"path"`    // sqlite file or badger directory
}

// PlannerConfig holds board settings.
type PlannerConfig struct {
	StartDate string `toml:"start_date"` // YYYY-MM-DD, empty means today
}

// DragConfig holds pointer settings.
type DragConfig struct {
	ActivationDistance float64 `toml:"activation_distance"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "paper", "night"
	Color bool   `toml:"color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn", "error"
	Format string `toml:"format"` // "pretty", "json"
	File   string `toml:"file"`   // empty means stderr for the CLI, discard for the TUI
}

// Themes lists the built-in TUI themes.
var Themes = []string{"paper", "night"}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: db.BackendSQLite,
			Path:    defaultDBPath(),
		},
		Drag: DragConfig{
			ActivationDistance: 8,
		},
		UI: UIConfig{
			Theme: "paper",
			Color: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logger.FormatPretty,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	return filepath.Join(StateDir(), "twine.db")
}

// StateDir returns the directory holding the database and debug log.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "twine")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "twine", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TWINE_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("TWINE_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("TWINE_START_DATE"); v != "" {
		cfg.Planner.StartDate = v
	}
	if v := os.Getenv("TWINE_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TWINE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("TWINE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("TWINE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case db.BackendSQLite, db.BackendBadger:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path must be set for the %s backend", c.Storage.Backend)
		}
	case db.BackendMemory:
	default:
		return fmt.Errorf("unknown storage.backend %q", c.Storage.Backend)
	}

	if c.Planner.StartDate != "" && !dateutil.IsValidDay(c.Planner.StartDate) {
		return fmt.Errorf("planner.start_date must be in YYYY-MM-DD format, got %q", c.Planner.StartDate)
	}
	if c.Drag.ActivationDistance <= 0 {
		return errors.New("drag.activation_distance must be positive")
	}
	if !isValidTheme(c.UI.Theme) {
		return fmt.Errorf("unknown ui.theme %q (want one of %s)", c.UI.Theme, strings.Join(Themes, ", "))
	}
	if !logger.IsValidLevel(c.Log.Level) {
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if c.Log.Format != logger.FormatPretty && c.Log.Format != logger.FormatJSON {
		return fmt.Errorf("log.format must be %q or %q, got %q", logger.FormatPretty, logger.FormatJSON, c.Log.Format)
	}
	return nil
}

func isValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

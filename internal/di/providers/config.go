// Package providers contains dependency injection providers for twine.
package providers

import (
	"log/slog"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/db"
	"github.com/javiermolinar/twine/internal/logger"
)

// Settings carries command-line overrides into the container.
type Settings struct {
	ConfigPath string // empty means config.DefaultConfigPath()
	Ephemeral  bool   // force the memory backend
	Debug      bool   // debug level; the TUI also logs to a file
	TUI        bool   // stdout belongs to the board, so log to a file or nowhere
	NoColor    bool
}

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	s := do.MustInvoke[*Settings](i)

	path := s.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, err
	}

	if s.Ephemeral {
		cfg.Storage.Backend = db.BackendMemory
	}
	if s.Debug {
		cfg.Log.Level = "debug"
	}
	if s.NoColor {
		cfg.UI.Color = false
	}
	return cfg, nil
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	s := do.MustInvoke[*Settings](i)

	lc := logger.Config{
		Format: cfg.Log.Format,
		Level:  logger.ParseLevel(cfg.Log.Level),
		Color:  cfg.UI.Color,
	}

	file := cfg.Log.File
	if file == "" && s.TUI && s.Debug {
		file = filepath.Join(config.StateDir(), "twine-debug.log")
	}

	switch {
	case file != "":
		log, err := logger.NewFile(file, lc)
		if err != nil {
			return nil, err
		}
		log.Debug("logging to file", "path", file)
		return log, nil
	case s.TUI:
		return logger.Discard(), nil
	default:
		return logger.New(lc), nil
	}
}

// ProvideSlogLogger provides access to the underlying slog.Logger for packages that need it.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}

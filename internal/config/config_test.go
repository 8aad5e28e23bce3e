package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected backend sqlite, got %s", cfg.Storage.Backend)
	}
	if !strings.HasSuffix(cfg.Storage.Path, filepath.Join("twine", "twine.db")) {
		t.Errorf("unexpected default path %s", cfg.Storage.Path)
	}
	if cfg.Drag.ActivationDistance != 8 {
		t.Errorf("expected activation_distance 8, got %v", cfg.Drag.ActivationDistance)
	}
	if cfg.UI.Theme != "paper" || !cfg.UI.Color {
		t.Errorf("unexpected ui defaults %+v", cfg.UI)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "pretty" {
		t.Errorf("unexpected log defaults %+v", cfg.Log)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected default backend, got %s", cfg.Storage.Backend)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
backend = "badger"
path = "/tmp/twine-badger"

[planner]
start_date = "2026-01-05"

[drag]
activation_distance = 4

[ui]
theme = "night"
color = false

[log]
level = "debug"
format = "json"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "badger" || cfg.Storage.Path != "/tmp/twine-badger" {
		t.Errorf("unexpected storage %+v", cfg.Storage)
	}
	if cfg.Planner.StartDate != "2026-01-05" {
		t.Errorf("expected start_date 2026-01-05, got %s", cfg.Planner.StartDate)
	}
	if cfg.Drag.ActivationDistance != 4 {
		t.Errorf("expected activation_distance 4, got %v", cfg.Drag.ActivationDistance)
	}
	if cfg.UI.Theme != "night" || cfg.UI.Color {
		t.Errorf("unexpected ui %+v", cfg.UI)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log %+v", cfg.Log)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[ui]\ntheme = \"night\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.Theme != "night" {
		t.Errorf("expected theme night, got %s", cfg.UI.Theme)
	}
	if cfg.Drag.ActivationDistance != 8 {
		t.Errorf("expected default activation_distance, got %v", cfg.Drag.ActivationDistance)
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[storage\nbackend ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TWINE_STORAGE_BACKEND", "memory")
	t.Setenv("TWINE_STORAGE_PATH", filepath.Join(dir, "env.db"))
	t.Setenv("TWINE_START_DATE", "2026-02-02")
	t.Setenv("TWINE_UI_THEME", "night")
	t.Setenv("TWINE_LOG_LEVEL", "warn")
	t.Setenv("TWINE_LOG_FORMAT", "json")
	t.Setenv("TWINE_LOG_FILE", filepath.Join(dir, "twine.log"))

	cfg, err := LoadFrom(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != "memory" {
		t.Errorf("expected backend memory, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != filepath.Join(dir, "env.db") {
		t.Errorf("unexpected path %s", cfg.Storage.Path)
	}
	if cfg.Planner.StartDate != "2026-02-02" {
		t.Errorf("expected start_date 2026-02-02, got %s", cfg.Planner.StartDate)
	}
	if cfg.UI.Theme != "night" {
		t.Errorf("expected theme night, got %s", cfg.UI.Theme)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" || cfg.Log.File != filepath.Join(dir, "twine.log") {
		t.Errorf("unexpected log %+v", cfg.Log)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"sqlite without path", func(c *Config) { c.Storage.Path = "" }, "storage.path"},
		{"badger without path", func(c *Config) { c.Storage.Backend = "badger"; c.Storage.Path = "" }, "storage.path"},
		{"bad start date", func(c *Config) { c.Planner.StartDate = "2026-13-40" }, "start_date"},
		{"zero distance", func(c *Config) { c.Drag.ActivationDistance = 0 }, "activation_distance"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "mocha" }, "ui.theme"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidate_MemoryNeedsNoPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "memory"
	cfg.Storage.Path = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/test.db", filepath.Join(home, "test.db")},
		{"/absolute/path.db", "/absolute/path.db"},
		{"relative/path.db", "relative/path.db"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Storage.Path = filepath.Join(tmpDir, "twine.db")
	cfg.Planner.StartDate = "2026-01-05"
	cfg.UI.Theme = "night"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Storage.Path != cfg.Storage.Path {
		t.Errorf("expected path %s, got %s", cfg.Storage.Path, loaded.Storage.Path)
	}
	if loaded.Planner.StartDate != "2026-01-05" {
		t.Errorf("expected start_date 2026-01-05, got %s", loaded.Planner.StartDate)
	}
	if loaded.UI.Theme != "night" {
		t.Errorf("expected theme night, got %s", loaded.UI.Theme)
	}
}

package di

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samber/do/v2"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/di/providers"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/tags"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestContainer_Ephemeral(t *testing.T) {
	injector := NewContainer(providers.Settings{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Ephemeral:  true,
		TUI:        true,
	})
	if err := Bootstrap(injector); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	cfg := do.MustInvoke[*config.Config](injector)
	if cfg.Storage.Backend != "memory" {
		t.Errorf("backend = %s, want memory", cfg.Storage.Backend)
	}

	store := do.MustInvoke[*planner.Store](injector)
	if store != do.MustInvoke[*planner.Store](injector) {
		t.Error("planner store is not a singleton")
	}

	a := store.AddBlock(content.NewBlock{Type: content.TypeText, Title: "A", Date: "2026-01-10"})
	b := store.AddBlock(content.NewBlock{Type: content.TypeText, Title: "B", Date: "2026-01-10", TimeSlot: content.SlotEvening})

	coord := do.MustInvoke[*drag.Coordinator](injector)
	if got := coord.End(a, b); got != drag.OutcomeSwap {
		t.Errorf("End() = %s, want swap", got)
	}

	if err := Shutdown(injector); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestContainer_PersistsAcrossRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "twine.db")
	cfgPath := writeConfig(t, "[storage]\nbackend = \"sqlite\"\npath = \""+filepath.ToSlash(dbPath)+"\"\n")
	settings := providers.Settings{ConfigPath: cfgPath, TUI: true}

	first := NewContainer(settings)
	if err := Bootstrap(first); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	id := do.MustInvoke[*planner.Store](first).AddBlock(content.NewBlock{Type: content.TypeCreative, Title: "Reel"})
	do.MustInvoke[*tags.Store](first).AddTag(tags.Creative, "Custom")
	if err := Shutdown(first); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	second := NewContainer(settings)
	if err := Bootstrap(second); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	defer func() { _ = Shutdown(second) }()

	if _, ok := do.MustInvoke[*planner.Store](second).BlockByID(id); !ok {
		t.Errorf("block %s not reloaded", id)
	}
	found := false
	for _, tag := range do.MustInvoke[*tags.Store](second).TagsForType(tags.Creative) {
		if tag == "Custom" {
			found = true
		}
	}
	if !found {
		t.Error("custom tag not reloaded")
	}
}

func TestContainer_InvalidConfig(t *testing.T) {
	injector := NewContainer(providers.Settings{
		ConfigPath: writeConfig(t, "[ui]\ntheme = \"neon\"\n"),
		TUI:        true,
	})
	if err := Bootstrap(injector); err == nil {
		t.Error("expected Bootstrap to fail on an invalid theme")
	}
}

type failingService struct{}

func (failingService) Shutdown() error { return errors.New("disk gone") }

func TestShutdown_ReportsFailures(t *testing.T) {
	injector := NewContainer(providers.Settings{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Ephemeral:  true,
	})
	if err := Bootstrap(injector); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	do.ProvideValue(injector, failingService{})

	err := Shutdown(injector)
	if err == nil || !strings.Contains(err.Error(), "disk gone") {
		t.Errorf("Shutdown() = %v, want the failing service reported", err)
	}
}

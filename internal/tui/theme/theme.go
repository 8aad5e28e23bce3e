// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/twine/internal/content"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Default is the theme used when none is configured.
const Default = "paper"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Empty cells, header band
	BgSelection string `toml:"bg_selection"` // Cursor
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Done blocks, hints
	Accent      string `toml:"accent"`       // Title, borders
	Today       string `toml:"today"`        // Today's date label
	Warning     string `toml:"warning"`      // Drag target, over-limit counter

	// One color per content type
	Text     string `toml:"text"`
	Creative string `toml:"creative"`
	Recycled string `toml:"recycled"`
	Flexible string `toml:"flexible"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to the default theme if the name is unknown.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = Default
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != Default {
			return Load(Default)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// TypeColor returns the hex color of a content type.
func (t *Theme) TypeColor(ct content.Type) string {
	switch ct {
	case content.TypeText:
		return t.Text
	case content.TypeCreative:
		return t.Creative
	case content.TypeRecycled:
		return t.Recycled
	case content.TypeFlexible:
		return t.Flexible
	default:
		return t.FgMuted
	}
}

func (t *Theme) applyDefaults() {
	t.BgHighlight = coalesce(t.BgHighlight, t.Bg)
	t.BgSelection = coalesce(t.BgSelection, t.BgHighlight, t.Accent)
	t.Today = coalesce(t.Today, t.Accent)
	t.Warning = coalesce(t.Warning, t.Accent)
	t.Text = coalesce(t.Text, t.Accent)
	t.Creative = coalesce(t.Creative, t.Accent)
	t.Recycled = coalesce(t.Recycled, t.Accent)
	t.Flexible = coalesce(t.Flexible, t.Accent)
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"paper", "night"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}

package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/twine/internal/content"
)

func TestNewPalette_DarkCards(t *testing.T) {
	base := &Theme{
		Bg:       "#101010",
		Fg:       "#ffffff",
		FgMuted:  "#aaaaaa",
		Accent:   "#ff0000",
		Text:     "#112233",
		Creative: "#445566",
	}
	base.applyDefaults()

	p := NewPalette(base)

	if got, want := p.Card(content.TypeText).Bg, lipgloss.Color(scaleColor(base.Text, 0.45, 40)); got != want {
		t.Fatalf("text card Bg = %q, want %q", got, want)
	}
	if got, want := p.Card(content.TypeCreative).DoneBg, lipgloss.Color(scaleColor(base.Creative, 0.25, 30)); got != want {
		t.Fatalf("creative card DoneBg = %q, want %q", got, want)
	}
	if got := p.Card(content.TypeRecycled).Accent; got != lipgloss.Color(base.Accent) {
		t.Fatalf("recycled accent = %q, want fallback %q", got, base.Accent)
	}
}

func TestNewPalette_LightThemeTintsTowardsPage(t *testing.T) {
	theme, err := Load("paper")
	if err != nil {
		t.Fatalf("Load(paper) unexpected error: %v", err)
	}
	p := NewPalette(theme)

	for _, ct := range content.Types {
		card := p.Card(ct)
		if relativeLuminance(string(card.Bg)) <= relativeLuminance(theme.TypeColor(ct)) {
			t.Errorf("%s card Bg %q is not lighter than %q", ct, card.Bg, theme.TypeColor(ct))
		}
		if card.Text != lipgloss.Color(theme.Fg) {
			t.Errorf("%s card text = %q, want dark foreground %q", ct, card.Text, theme.Fg)
		}
	}
}

func TestPalette_UnknownTypeCard(t *testing.T) {
	p := NewPalette(nil)
	if got := p.Card("video"); got.Accent != p.FgMuted {
		t.Errorf("unknown card accent = %q, want %q", got.Accent, p.FgMuted)
	}
}

func TestScaleColor(t *testing.T) {
	tests := []struct {
		hex    string
		factor float64
		floor  int
		want   string
	}{
		{"#ff8040", 0.5, 0, "#7f4020"},
		{"#101010", 0.5, 40, "#282828"},
		{"not-a-color", 0.5, 0, "not-a-color"},
	}
	for _, tt := range tests {
		if got := scaleColor(tt.hex, tt.factor, tt.floor); got != tt.want {
			t.Errorf("scaleColor(%q) = %q, want %q", tt.hex, got, tt.want)
		}
	}
}

func TestBlendColors(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("ratio 0 = %q", got)
	}
	if got := blendColors("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("ratio 1 = %q", got)
	}
	if got := blendColors("#000000", "#ffffff", 2); got != "#ffffff" {
		t.Errorf("ratio clamps, got %q", got)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

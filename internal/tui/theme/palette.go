package theme

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/twine/internal/content"
)

// CardColors are the colors of one content type's cards.
type CardColors struct {
	Accent lipgloss.Color // marker and border
	Bg     lipgloss.Color // card background
	DoneBg lipgloss.Color // card background once done
	Text   lipgloss.Color // readable text on Bg
}

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color

	Cards map[content.Type]CardColors
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(Default)
	}

	light := isLightTheme(t.Bg)
	p := &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Today:       lipgloss.Color(t.Today),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),

		Cards: make(map[content.Type]CardColors, len(content.Types)),
	}

	for _, ct := range content.Types {
		accent := t.TypeColor(ct)
		bg := cardBg(accent, t.Bg, light)
		p.Cards[ct] = CardColors{
			Accent: lipgloss.Color(accent),
			Bg:     lipgloss.Color(bg),
			DoneBg: lipgloss.Color(doneBg(accent, t.Bg, light)),
			Text:   lipgloss.Color(chooseTextColor(bg, t.Fg, t.Bg)),
		}
	}
	return p
}

// Card returns the card colors of a content type, falling back to muted colors.
func (p *Palette) Card(ct content.Type) CardColors {
	if c, ok := p.Cards[ct]; ok {
		return c
	}
	return CardColors{Accent: p.FgMuted, Bg: p.BgHighlight, DoneBg: p.BgHighlight, Text: p.Fg}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// cardBg tints the background with the type color: towards the page on light
// themes, darkened on dark ones.
func cardBg(accent, bg string, light bool) string {
	if light {
		return blendColors(accent, bg, 0.80)
	}
	return scaleColor(accent, 0.45, 40)
}

func doneBg(accent, bg string, light bool) string {
	if light {
		return blendColors(accent, bg, 0.92)
	}
	return scaleColor(accent, 0.25, 30)
}

type rgb struct{ r, g, b int }

func parseColor(hex string) (rgb, bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)}, true
}

func (c rgb) hex() string {
	clamp := func(v int) int { return max(0, min(255, v)) }
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []int{clamp(c.r), clamp(c.g), clamp(c.b)} {
		out[1+2*i] = digits[v>>4]
		out[2+2*i] = digits[v&0xf]
	}
	return string(out)
}

// scaleColor multiplies each channel by factor, keeping it at or above floor.
func scaleColor(hex string, factor float64, floor int) string {
	c, ok := parseColor(hex)
	if !ok {
		return hex
	}
	scale := func(v int) int { return max(int(float64(v)*factor), floor) }
	return rgb{scale(c.r), scale(c.g), scale(c.b)}.hex()
}

// blendColors mixes a towards b by ratio (0 keeps a, 1 gives b).
func blendColors(a, b string, ratio float64) string {
	ca, okA := parseColor(a)
	cb, okB := parseColor(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))
	mix := func(x, y int) int { return int(float64(x)*(1-ratio) + float64(y)*ratio) }
	return rgb{mix(ca.r, cb.r), mix(ca.g, cb.g), mix(ca.b, cb.b)}.hex()
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1, l2 := relativeLuminance(a), relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, ok := parseColor(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(c.r) + 0.7152*srgbToLinear(c.g) + 0.0722*srgbToLinear(c.b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

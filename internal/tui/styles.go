package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/tui/theme"
)

// Board geometry.
const (
	labelWidth  = 12 // "Mon Jan 05" plus padding
	minColWidth = 12
	headerLines = 2
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title style
	TitleStyle lipgloss.Style

	// Header styles
	HeaderStyle       lipgloss.Style
	ColumnHeaderStyle lipgloss.Style
	WeekHeaderStyle   lipgloss.Style

	// Day label column
	DayLabelStyle      lipgloss.Style
	DayLabelTodayStyle lipgloss.Style

	// Cards, one per content type
	cardStyles     map[content.Type]lipgloss.Style
	cardDoneStyles map[content.Type]lipgloss.Style

	// Card being dragged
	DraggingStyle lipgloss.Style

	// Empty cell line
	EmptyCellStyle lipgloss.Style

	// Cursor style
	CursorStyle lipgloss.Style

	// Drop target under the cursor while dragging
	DropTargetStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	s := &Styles{
		palette:        p,
		cardStyles:     make(map[content.Type]lipgloss.Style, len(content.Types)),
		cardDoneStyles: make(map[content.Type]lipgloss.Style, len(content.Types)),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(p.Fg)

	s.ColumnHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(p.Fg).
		Background(p.BgHighlight)

	s.WeekHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent)

	s.DayLabelStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Width(labelWidth)

	s.DayLabelTodayStyle = s.DayLabelStyle.
		Foreground(p.Today).
		Bold(true)

	// Cards: tinted background, type accent as a left bar
	for _, ct := range content.Types {
		c := p.Card(ct)
		s.cardStyles[ct] = cardStyle(c)
		s.cardDoneStyles[ct] = cardStyle(c).
			Background(c.DoneBg).
			BorderBackground(c.DoneBg).
			Foreground(p.FgMuted).
			Strikethrough(true)
	}

	s.DraggingStyle = lipgloss.NewStyle().
		Background(p.Warning).
		Foreground(p.TextOnWarning).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle()

	s.CursorStyle = lipgloss.NewStyle().
		Background(p.BgSelection).
		Foreground(p.Fg).
		Bold(true)

	s.DropTargetStyle = lipgloss.NewStyle().
		Background(p.Accent).
		Foreground(p.TextOnAccent).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Accent)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(p.Warning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	return s
}

func cardStyle(c theme.CardColors) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(c.Bg).
		Foreground(c.Text).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(c.Accent).
		BorderBackground(c.Bg)
}

// CardStyle returns the style of a card, width including the left bar.
// Unknown types fall back to muted colors.
func (s *Styles) CardStyle(ct content.Type, done bool, width int) lipgloss.Style {
	styles := s.cardStyles
	if done {
		styles = s.cardDoneStyles
	}
	style, ok := styles[ct]
	if !ok {
		style = cardStyle(s.palette.Card(ct))
	}
	return style.Width(width - 1)
}

// CharCountStyle colors the draft counter, warning once over the limit.
func (s *Styles) CharCountStyle(over bool) lipgloss.Style {
	if over {
		return s.ErrorStyle
	}
	return s.HelpStyle
}

// CardSelectedStyle returns the style of a card under the cursor.
func (s *Styles) CardSelectedStyle(ct content.Type, done bool, width int) lipgloss.Style {
	return s.CardStyle(ct, done, width).
		Background(s.palette.BgSelection).
		BorderBackground(s.palette.BgSelection).
		Foreground(s.palette.Fg).
		Bold(true)
}

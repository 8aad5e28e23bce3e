// Package tui provides the terminal planning board for twine.
package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/tags"
	"github.com/javiermolinar/twine/internal/tui/theme"
)

// Deps are the collaborators the board reads and mutates.
type Deps struct {
	Config      *config.Config
	Store       *planner.Store
	Tags        *tags.Store
	Cache       *grid.Cache
	Coordinator *drag.Coordinator
	Log         *slog.Logger

	Now   func() time.Time   // defaults to time.Now
	Start time.Time          // first day shown, defaults to today
	Copy  func(string) error // defaults to the system clipboard
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
)

// Position is a cursor position on the board.
type Position struct {
	Day   int // 0..grid.Days-1 from the window start
	Slot  int // content.TimeSlot
	Index int // card index in the cell; len(cards) is the empty drop line
}

// Model is the main TUI model.
type Model struct {
	deps   Deps
	styles *Styles
	keys   keyMap
	help   help.Model
	prompt textinput.Model
	sensor *drag.Sensor

	start  time.Time // Monday of the first week shown
	cursor Position
	mode   Mode
	scroll int

	// pendingDelete holds the id armed by the first delete key press.
	pendingDelete string

	width  int
	height int

	statusMsg string
	err       error
}

// New creates a board model.
func New(deps Deps) Model {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Copy == nil {
		deps.Copy = clipboard.WriteAll
	}
	if deps.Log == nil {
		deps.Log = slog.New(slog.DiscardHandler)
	}
	if deps.Start.IsZero() {
		deps.Start = dateutil.Day(deps.Now())
	}

	themeName := theme.Default
	distance := drag.DefaultActivationDistance
	if deps.Config != nil {
		themeName = deps.Config.UI.Theme
		distance = deps.Config.Drag.ActivationDistance
	}
	if !theme.IsAvailable(themeName) {
		deps.Log.Warn("unknown theme, using default", "theme", themeName)
	}
	th, err := theme.Load(themeName)
	if err != nil {
		deps.Log.Error("loading theme", "error", err)
	}

	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.Placeholder = "title, or /command"
	prompt.CharLimit = content.CharLimit

	m := Model{
		deps:   deps,
		styles: NewStyles(th),
		keys:   defaultKeyMap(),
		help:   help.New(),
		prompt: prompt,
		sensor: drag.NewSensor(deps.Coordinator, distance),
		start:  dateutil.MondayOf(deps.Start),
	}
	m.cursor = Position{Day: m.dayIndex(deps.Start)}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Run starts the board and blocks until the user quits.
func Run(deps Deps) error {
	p := tea.NewProgram(New(deps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// dates returns the days of the current window.
func (m Model) dates() []time.Time {
	return grid.FourWeekRange(m.start)
}

// dateAt returns the date key of a day index.
func (m Model) dateAt(day int) string {
	return dateutil.FormatDay(m.start.AddDate(0, 0, day))
}

// dayIndex returns the window index of t, or -1 when t is outside the window.
func (m Model) dayIndex(t time.Time) int {
	d := int(dateutil.Day(t).Sub(m.start).Hours() / 24)
	if d < 0 || d >= grid.Days {
		return -1
	}
	return d
}

func (m Model) buckets() grid.Buckets {
	return m.deps.Cache.Buckets()
}

// cell returns the cards of a day and slot in the window.
func (m Model) cell(day, slot int) []content.Block {
	return m.buckets().At(m.dateAt(day), content.TimeSlot(slot))
}

// cardAt returns the card under the cursor.
func (m Model) cardAt(p Position) (content.Block, bool) {
	cards := m.cell(p.Day, p.Slot)
	if p.Index < 0 || p.Index >= len(cards) {
		return content.Block{}, false
	}
	return cards[p.Index], true
}

// targetAt returns the drop target of a position: a card id or a slot token.
func (m Model) targetAt(p Position) string {
	if b, ok := m.cardAt(p); ok {
		return b.ID
	}
	return grid.SlotID(m.dateAt(p.Day), content.TimeSlot(p.Slot))
}

// clampCursor keeps the cursor inside the window and its cell.
func (m *Model) clampCursor() {
	m.cursor.Day = max(0, min(m.cursor.Day, grid.Days-1))
	m.cursor.Slot = max(0, min(m.cursor.Slot, content.SlotsPerDay-1))
	m.cursor.Index = max(0, min(m.cursor.Index, len(m.cell(m.cursor.Day, m.cursor.Slot))))
}

// focusBlock moves the cursor onto id when it is inside the window.
func (m *Model) focusBlock(id string) bool {
	b, ok := m.deps.Store.BlockByID(id)
	if !ok {
		return false
	}
	t, err := dateutil.ParseDay(b.Date)
	if err != nil {
		return false
	}
	day := m.dayIndex(t)
	if day < 0 {
		return false
	}
	for i, c := range m.cell(day, int(b.TimeSlot)) {
		if c.ID == id {
			m.cursor = Position{Day: day, Slot: int(b.TimeSlot), Index: i}
			return true
		}
	}
	return false
}

// setWindow moves the window to the weeks containing start.
func (m *Model) setWindow(start time.Time) {
	m.start = dateutil.MondayOf(start)
	m.scroll = 0
	m.clampCursor()
}

// today returns the current calendar day.
func (m Model) today() time.Time {
	return dateutil.Day(m.deps.Now())
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/tui/commands"
	"github.com/javiermolinar/twine/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.statusMsg, m.err = "", nil
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Delete) {
		m.pendingDelete = ""
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Navigation
	case key.Matches(msg, m.keys.Up):
		m.cursorUp()
	case key.Matches(msg, m.keys.Down):
		m.cursorDown()
	case key.Matches(msg, m.keys.Left):
		m.cursorSlot(-1)
	case key.Matches(msg, m.keys.Right):
		m.cursorSlot(1)
	case key.Matches(msg, m.keys.PrevWeeks):
		m.setWindow(grid.Shift(m.start, -1))
		m.statusMsg = m.rangeLabel()
	case key.Matches(msg, m.keys.NextWeeks):
		m.setWindow(grid.Shift(m.start, 1))
		m.statusMsg = m.rangeLabel()
	case key.Matches(msg, m.keys.Today):
		m.setWindow(m.today())
		m.cursor = Position{Day: m.dayIndex(m.today())}

	// Drag
	case key.Matches(msg, m.keys.Pick):
		m.pickUp()
	case key.Matches(msg, m.keys.Drop):
		m.drop()
	case key.Matches(msg, m.keys.Cancel):
		if m.deps.Coordinator.State() == drag.Dragging {
			m.deps.Coordinator.Cancel()
			m.sensor.Cancel()
			m.statusMsg = "Drag cancelled"
		}

	// Blocks
	case key.Matches(msg, m.keys.Done):
		m.toggleDone()
	case key.Matches(msg, m.keys.Delete):
		m.deleteUnderCursor()
	case key.Matches(msg, m.keys.Copy):
		cmd = m.copyUnderCursor()
	case key.Matches(msg, m.keys.Add):
		m.openPrompt("")
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Command):
		m.openPrompt("/")
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.clampCursor()
	m.ensureCursorVisible()
	return m, cmd
}

// handlePromptKeys handles keys in prompt mode.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		m.handlePromptSubmit(value)
		m.clampCursor()
		m.ensureCursorVisible()
		return m, nil

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) openPrompt(value string) {
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
}

func (m *Model) closePrompt() {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
}

func (m *Model) cursorUp() {
	if m.cursor.Index > 0 {
		m.cursor.Index--
		return
	}
	if m.cursor.Day > 0 {
		m.cursor.Day--
		m.cursor.Index = len(m.cell(m.cursor.Day, m.cursor.Slot))
	}
}

func (m *Model) cursorDown() {
	if m.cursor.Index < len(m.cell(m.cursor.Day, m.cursor.Slot)) {
		m.cursor.Index++
		return
	}
	if m.cursor.Day < grid.Days-1 {
		m.cursor.Day++
		m.cursor.Index = 0
	}
}

func (m *Model) cursorSlot(delta int) {
	m.cursor.Slot = max(0, min(m.cursor.Slot+delta, content.SlotsPerDay-1))
}

// pickUp starts a keyboard drag of the card under the cursor.
func (m *Model) pickUp() {
	b, ok := m.cardAt(m.cursor)
	if !ok {
		m.statusMsg = "Nothing to pick up"
		return
	}
	m.deps.Coordinator.Start(b.ID)
}

// drop ends the keyboard drag on the card or empty line under the cursor.
func (m *Model) drop() {
	active, ok := m.deps.Coordinator.Active()
	if !ok {
		return
	}
	target := m.targetAt(m.cursor)
	m.reportDrop(active, target, m.deps.Coordinator.End(active.ID, target))
}

// toggleDone flips the done flag of the card under the cursor.
func (m *Model) toggleDone() {
	b, ok := m.cardAt(m.cursor)
	if !ok {
		return
	}
	m.deps.Store.ToggleDone(b.ID)
	if b.IsDone {
		m.statusMsg = fmt.Sprintf("Marked %q as not done", b.Title)
	} else {
		m.statusMsg = fmt.Sprintf("Marked %q as done", b.Title)
	}
}

// deleteUnderCursor deletes the card under the cursor on the second press.
func (m *Model) deleteUnderCursor() {
	b, ok := m.cardAt(m.cursor)
	if !ok {
		m.pendingDelete = ""
		return
	}
	if m.pendingDelete != b.ID {
		m.pendingDelete = b.ID
		m.statusMsg = fmt.Sprintf("Press d again to delete %q", b.Title)
		return
	}
	m.pendingDelete = ""
	m.deps.Store.DeleteBlock(b.ID)
	m.statusMsg = fmt.Sprintf("Deleted %q", b.Title)
}

// copyUnderCursor copies the draft text of the card under the cursor.
func (m *Model) copyUnderCursor() tea.Cmd {
	b, ok := m.cardAt(m.cursor)
	if !ok {
		return nil
	}
	if b.Text == "" {
		m.statusMsg = "Nothing to copy"
		return nil
	}
	return commands.CopyText(m.deps.Copy, b.Text)
}

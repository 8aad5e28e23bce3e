package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/tui/commands"
)

// statusTTL is how long asynchronous status messages stay visible.
const statusTTL = 3 * time.Second

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.Width = max(10, msg.Width-4)
		m.ensureCursorVisible()
		return m, nil

	case commands.CopiedMsg:
		m.statusMsg = fmt.Sprintf("Copied %d characters", msg.Chars)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case commands.ErrMsg:
		m.deps.Log.Error("board command failed", "error", msg.Err)
		m.err = msg.Err
		return m, nil
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// reportDrop describes a finished drag of active onto target in the status
// line and keeps the cursor on the dragged card.
func (m *Model) reportDrop(active content.Block, target string, outcome drag.Outcome) {
	m.deps.Log.Debug("drop", "id", active.ID, "target", target, "outcome", outcome.String())
	switch outcome {
	case drag.OutcomeSwap:
		other, _ := m.deps.Store.BlockByID(target)
		m.statusMsg = fmt.Sprintf("Swapped %q with %q", active.Title, other.Title)
	case drag.OutcomeMove:
		moved, _ := m.deps.Store.BlockByID(active.ID)
		m.statusMsg = fmt.Sprintf("Moved %q to %s %s", active.Title, moved.Date, moved.TimeSlot)
	default:
		m.statusMsg = "No change"
		return
	}
	if !m.focusBlock(active.ID) {
		m.clampCursor()
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/grid"
	"github.com/javiermolinar/twine/internal/tui/input"
)

// View renders the board.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	l := m.layout()
	h := m.bodyHeight()
	scroll := l.clampScroll(m.scroll, h)

	lines := make([]string, 0, headerLines+h+m.footerHeight())
	lines = append(lines, m.renderTitle(), m.renderColumnHeaders(l))

	weeks := grid.GroupIntoWeeks(m.dates())
	active, _ := m.deps.Coordinator.Active()
	end := min(len(l.lines), scroll+h)
	for _, ln := range l.lines[scroll:end] {
		if ln.kind == lineWeek {
			label := fmt.Sprintf(" Week %d · %s", ln.week+1, grid.WeekLabel(weeks[ln.week]))
			lines = append(lines, m.styles.WeekHeaderStyle.Render(ansi.Truncate(label, m.width, "…")))
			continue
		}
		lines = append(lines, m.renderDayLine(l, ln, active.ID))
	}
	for range h - (end - scroll) {
		lines = append(lines, "")
	}

	lines = append(lines, m.renderStatus(), m.helpView())
	return strings.Join(lines, "\n")
}

// rangeLabel describes the four weeks shown.
func (m Model) rangeLabel() string {
	return grid.WeekLabel(m.dates())
}

func (m Model) renderTitle() string {
	store := m.deps.Store
	title := m.styles.TitleStyle.Render("twine") + "  " + m.styles.HeaderStyle.Render(m.rangeLabel())
	counts := m.styles.HelpStyle.Render(fmt.Sprintf("%d blocks · %d done", store.Count(), store.DoneCount()))
	gap := m.width - lipgloss.Width(title) - lipgloss.Width(counts)
	if gap < 1 {
		return title
	}
	return title + strings.Repeat(" ", gap) + counts
}

func (m Model) renderColumnHeaders(l boardLayout) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for _, slot := range content.Slots {
		b.WriteString(m.styles.SeparatorStyle.Render("│"))
		b.WriteString(m.styles.ColumnHeaderStyle.Width(l.colWidth).Render(slot.String()))
	}
	return b.String()
}

func (m Model) renderDayLine(l boardLayout, ln boardLine, activeID string) string {
	var b strings.Builder

	label := ""
	if ln.row == 0 {
		t := m.start.AddDate(0, 0, ln.day)
		label = " " + grid.WeekdayShortName(ln.day%grid.DaysPerWeek) + t.Format(" Jan 02")
	}
	if ln.row == 0 && m.dayIndex(m.today()) == ln.day {
		b.WriteString(m.styles.DayLabelTodayStyle.Render(label))
	} else {
		b.WriteString(m.styles.DayLabelStyle.Render(label))
	}

	date := m.dateAt(ln.day)
	buckets := m.buckets()
	for _, slot := range content.Slots {
		b.WriteString(m.styles.SeparatorStyle.Render("│"))
		pos := Position{Day: ln.day, Slot: int(slot), Index: ln.row}
		b.WriteString(m.renderCellLine(buckets.At(date, slot), pos, l.colWidth, activeID))
	}
	return b.String()
}

// renderCellLine renders one line of a cell: a card, the drop line or blank.
func (m Model) renderCellLine(cards []content.Block, pos Position, width int, activeID string) string {
	selected := m.cursor == pos
	dragging := activeID != ""

	if pos.Index < len(cards) {
		card := cards[pos.Index]
		text := cardText(card, width-1)
		switch {
		case card.ID == activeID:
			return m.styles.DraggingStyle.Width(width).Render(ansi.Truncate(" "+text, width, "…"))
		case selected && dragging:
			return m.styles.DropTargetStyle.Width(width).Render(ansi.Truncate(" ⇄ "+text, width, "…"))
		case selected:
			return m.styles.CardSelectedStyle(card.Type, card.IsDone, width).Render(text)
		default:
			return m.styles.CardStyle(card.Type, card.IsDone, width).Render(text)
		}
	}

	if pos.Index == len(cards) && selected {
		if dragging {
			return m.styles.DropTargetStyle.Width(width).Render(" ↓ drop here")
		}
		return m.styles.CursorStyle.Width(width).Render(" +")
	}
	return m.styles.EmptyCellStyle.Width(width).Render("")
}

// cardText is the one-line label of a card, truncated to width.
func cardText(b content.Block, width int) string {
	status := "○"
	if b.IsDone {
		status = "✓"
	}
	text := status + " " + b.Title
	if b.IsPromotional {
		text += " $"
	}
	return ansi.Truncate(text, width, "…")
}

// renderStatus renders the status line: prompt, error, status, drag hint or
// the details of the card under the cursor.
func (m Model) renderStatus() string {
	switch {
	case m.mode == ModePrompt:
		return m.prompt.View()
	case m.err != nil:
		return m.styles.ErrorStyle.Render("Error: " + m.err.Error())
	case m.statusMsg != "":
		return m.styles.StatusStyle.Render(m.statusMsg)
	}

	if active, ok := m.deps.Coordinator.Active(); ok {
		return m.styles.StatusStyle.Render(fmt.Sprintf("Dragging %q: enter to drop, esc to cancel", active.Title))
	}
	if b, ok := m.cardAt(m.cursor); ok {
		return m.renderDetails(b)
	}
	return ""
}

func (m Model) renderDetails(b content.Block) string {
	parts := []string{b.Title, b.Type.Label()}
	if len(b.Tags) > 0 {
		parts = append(parts, "#"+strings.Join(b.Tags, " #"))
	}
	if b.IsPromotional {
		parts = append(parts, "promotional")
	}
	details := m.styles.HeaderStyle.Render(ansi.Truncate(strings.Join(parts, " · "), max(0, m.width-16), "…"))

	count := fmt.Sprintf("%d/%d", content.CharLimit-b.CharsRemaining(), content.CharLimit)
	return details + "  " + m.styles.CharCountStyle(b.OverLimit()).Render(count)
}

// helpView renders key help, or command suggestions while typing a command.
func (m Model) helpView() string {
	if m.mode == ModePrompt {
		if matches := input.PromptMatchingCommands(m.prompt.Value(), promptCommands); len(matches) > 0 {
			hints := make([]string, 0, len(matches))
			for _, c := range matches {
				hints = append(hints, c.Usage)
			}
			return m.styles.HelpStyle.Render(ansi.Truncate(strings.Join(hints, "  "), m.width, "…"))
		}
		return m.styles.HelpStyle.Render("enter submit · esc cancel · tab complete")
	}
	return m.help.View(m.keys)
}

func (m Model) footerHeight() int {
	return 1 + lipgloss.Height(m.helpView())
}

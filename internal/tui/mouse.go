package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Pointer travel is measured in eighths of a column. Terminal rows are about
// twice as tall as columns wide, so the default activation distance is one
// column or half a row.
const (
	pointerUnitsX = 8
	pointerUnitsY = 16
)

// scrollStep is the number of lines a wheel notch scrolls.
const scrollStep = 3

func pointer(msg tea.MouseMsg) (float64, float64) {
	return float64(msg.X * pointerUnitsX), float64(msg.Y * pointerUnitsY)
}

// handleMouseMsg handles mouse input: wheel scrolling, clicks that move the
// cursor, and press-drag-release gestures through the drag sensor.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModePrompt {
		return m, nil
	}
	l := m.layout()
	m.scroll = l.clampScroll(m.scroll, m.bodyHeight())

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll = max(0, m.scroll-scrollStep)

	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll = l.clampScroll(m.scroll+scrollStep, m.bodyHeight())

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.statusMsg, m.err = "", nil
		pos, ok := l.hit(msg.X, msg.Y, m.scroll)
		if !ok {
			return m, nil
		}
		m.cursor = pos
		m.clampCursor()
		if b, ok := m.cardAt(pos); ok {
			x, y := pointer(msg)
			m.sensor.Press(b.ID, x, y)
		}

	case msg.Action == tea.MouseActionMotion:
		if m.sensor.PressedID() == "" {
			return m, nil
		}
		x, y := pointer(msg)
		m.sensor.Motion(x, y)
		if !m.sensor.Active() {
			return m, nil
		}
		// The cursor follows the pointer and marks the drop target.
		if pos, ok := l.hit(msg.X, msg.Y, m.scroll); ok {
			m.cursor = pos
			m.clampCursor()
		}

	case msg.Action == tea.MouseActionRelease:
		if m.sensor.PressedID() == "" {
			return m, nil
		}
		active, dragging := m.deps.Coordinator.Active()
		target := ""
		if pos, ok := l.hit(msg.X, msg.Y, m.scroll); ok {
			target = m.targetAt(pos)
		}
		outcome, clicked := m.sensor.Release(target)
		if !clicked && dragging {
			m.reportDrop(active, target, outcome)
			m.ensureCursorVisible()
		}
	}
	return m, nil
}

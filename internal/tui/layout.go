package tui

import (
	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/grid"
)

type lineKind int

const (
	lineWeek lineKind = iota // week header
	lineDay                  // one line of a day row
)

// boardLine is one body line of the board.
type boardLine struct {
	kind lineKind
	week int
	day  int // window day index, lineDay only
	row  int // line within the day row, lineDay only
}

// cellCounts holds the number of cards per day and slot.
type cellCounts [grid.Days][content.SlotsPerDay]int

// boardLayout maps board cells to terminal lines and columns.
// A day row is as tall as its fullest cell plus one empty drop line.
type boardLayout struct {
	colWidth  int
	lines     []boardLine
	dayTop    [grid.Days]int
	dayHeight [grid.Days]int
}

func buildLayout(counts cellCounts, width int) boardLayout {
	l := boardLayout{colWidth: colWidthFor(width)}
	for day := range grid.Days {
		if day%grid.DaysPerWeek == 0 {
			l.lines = append(l.lines, boardLine{kind: lineWeek, week: day / grid.DaysPerWeek})
		}
		h := 0
		for _, n := range counts[day] {
			h = max(h, n)
		}
		h++
		l.dayTop[day] = len(l.lines)
		l.dayHeight[day] = h
		for row := range h {
			l.lines = append(l.lines, boardLine{kind: lineDay, week: day / grid.DaysPerWeek, day: day, row: row})
		}
	}
	return l
}

// colWidthFor splits the width left of the label column across the slots.
// Every slot column is preceded by a one-cell separator.
func colWidthFor(width int) int {
	w := (width - labelWidth - content.SlotsPerDay) / content.SlotsPerDay
	return max(minColWidth, w)
}

// slotX returns the first column of a slot.
func (l boardLayout) slotX(slot int) int {
	return labelWidth + slot*(l.colWidth+1) + 1
}

// slotAtX returns the slot under terminal column x.
func (l boardLayout) slotAtX(x int) (int, bool) {
	rel := x - labelWidth
	if rel < 0 {
		return 0, false
	}
	slot, off := rel/(l.colWidth+1), rel%(l.colWidth+1)
	if slot >= content.SlotsPerDay || off == 0 {
		return 0, false
	}
	return slot, true
}

// hit returns the board position under the terminal cell (x, y).
func (l boardLayout) hit(x, y, scroll int) (Position, bool) {
	if y < headerLines {
		return Position{}, false
	}
	row := y - headerLines + scroll
	if row < 0 || row >= len(l.lines) || l.lines[row].kind != lineDay {
		return Position{}, false
	}
	slot, ok := l.slotAtX(x)
	if !ok {
		return Position{}, false
	}
	ln := l.lines[row]
	return Position{Day: ln.day, Slot: slot, Index: ln.row}, true
}

// cursorLine returns the body line of a position.
func (l boardLayout) cursorLine(p Position) int {
	return l.dayTop[p.Day] + min(p.Index, l.dayHeight[p.Day]-1)
}

// bodyHeight returns the lines left for the board body.
func bodyHeight(height, footer int) int {
	return max(1, height-headerLines-footer)
}

// scrollTo returns the scroll offset keeping line visible in a body of h
// lines. A day at the top of its week keeps the week header in view.
func (l boardLayout) scrollTo(scroll, line, h int) int {
	top := line
	if line > 0 && l.lines[line-1].kind == lineWeek {
		top = line - 1
	}
	if top < scroll {
		scroll = top
	}
	if line >= scroll+h {
		scroll = line - h + 1
	}
	return l.clampScroll(scroll, h)
}

// clampScroll limits scroll so a body of h lines stays filled.
func (l boardLayout) clampScroll(scroll, h int) int {
	return max(0, min(scroll, len(l.lines)-h))
}

// layout builds the layout of the current window.
func (m Model) layout() boardLayout {
	var counts cellCounts
	b := m.buckets()
	for day := range grid.Days {
		date := m.dateAt(day)
		for _, slot := range content.Slots {
			counts[day][slot] = len(b.At(date, slot))
		}
	}
	return buildLayout(counts, m.width)
}

// ensureCursorVisible scrolls the board so the cursor line is on screen.
func (m *Model) ensureCursorVisible() {
	l := m.layout()
	m.scroll = l.scrollTo(m.scroll, l.cursorLine(m.cursor), m.bodyHeight())
}

func (m Model) bodyHeight() int {
	return bodyHeight(m.height, m.footerHeight())
}

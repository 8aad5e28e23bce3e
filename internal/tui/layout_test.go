package tui

import "testing"

// testCounts: Monday has two morning cards and one afternoon card,
// Wednesday one evening card.
func testCounts() cellCounts {
	var c cellCounts
	c[0] = [3]int{2, 1, 0}
	c[2] = [3]int{0, 0, 1}
	return c
}

func TestBuildLayout(t *testing.T) {
	l := buildLayout(testCounts(), 120)

	if l.colWidth != 35 {
		t.Errorf("colWidth = %d, want 35", l.colWidth)
	}
	// 4 week headers, Monday 3 lines, Wednesday 2, 26 single-line days
	if len(l.lines) != 35 {
		t.Fatalf("lines = %d, want 35", len(l.lines))
	}

	tests := []struct {
		day, top, height int
	}{
		{0, 1, 3},
		{1, 4, 1},
		{2, 5, 2},
		{3, 7, 1},
		{6, 10, 1},
		{7, 12, 1}, // after the week 2 header
		{27, 34, 1},
	}
	for _, tt := range tests {
		if l.dayTop[tt.day] != tt.top || l.dayHeight[tt.day] != tt.height {
			t.Errorf("day %d: top %d height %d, want %d %d",
				tt.day, l.dayTop[tt.day], l.dayHeight[tt.day], tt.top, tt.height)
		}
	}

	if ln := l.lines[11]; ln.kind != lineWeek || ln.week != 1 {
		t.Errorf("line 11 = %+v, want week 1 header", ln)
	}
}

func TestColWidthFor(t *testing.T) {
	tests := []struct {
		width, want int
	}{
		{120, 35},
		{90, 25},
		{40, minColWidth},
		{0, minColWidth},
	}
	for _, tt := range tests {
		if got := colWidthFor(tt.width); got != tt.want {
			t.Errorf("colWidthFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestLayoutHit(t *testing.T) {
	l := buildLayout(testCounts(), 120)

	tests := []struct {
		name   string
		x, y   int
		scroll int
		want   Position
		ok     bool
	}{
		{name: "first_card", x: 13, y: 3, want: Position{Day: 0, Slot: 0, Index: 0}, ok: true},
		{name: "afternoon_second_line", x: 49, y: 4, want: Position{Day: 0, Slot: 1, Index: 1}, ok: true},
		{name: "evening_drop_line", x: 85, y: 8, want: Position{Day: 2, Slot: 2, Index: 1}, ok: true},
		{name: "last_column", x: 119, y: 3, want: Position{Day: 0, Slot: 2, Index: 0}, ok: true},
		{name: "label_column", x: 5, y: 3},
		{name: "separator", x: 12, y: 3},
		{name: "inner_separator", x: 48, y: 3},
		{name: "past_columns", x: 120, y: 3},
		{name: "week_header", x: 13, y: 2},
		{name: "column_header", x: 13, y: 1},
		{name: "below_board", x: 13, y: 40},
		{name: "scrolled", x: 13, y: 2, scroll: 5, want: Position{Day: 2, Slot: 0, Index: 0}, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.hit(tt.x, tt.y, tt.scroll)
			if ok != tt.ok {
				t.Fatalf("hit(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("hit(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayoutCursorLine(t *testing.T) {
	l := buildLayout(testCounts(), 120)

	if got := l.cursorLine(Position{Day: 0, Index: 1}); got != 2 {
		t.Errorf("cursorLine = %d, want 2", got)
	}
	// index past the row is clamped to its last line
	if got := l.cursorLine(Position{Day: 0, Index: 9}); got != 3 {
		t.Errorf("cursorLine = %d, want 3", got)
	}
}

func TestLayoutScrollTo(t *testing.T) {
	l := buildLayout(testCounts(), 120)

	tests := []struct {
		name         string
		scroll, line int
		h            int
		want         int
	}{
		{name: "visible", scroll: 0, line: 3, h: 5, want: 0},
		{name: "below", scroll: 0, line: 12, h: 5, want: 8},
		{name: "above_keeps_week_header", scroll: 20, line: 12, h: 5, want: 11},
		{name: "last_line", scroll: 0, line: 34, h: 5, want: 30},
		{name: "tall_body", scroll: 3, line: 34, h: 50, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.scrollTo(tt.scroll, tt.line, tt.h); got != tt.want {
				t.Errorf("scrollTo(%d, %d, %d) = %d, want %d", tt.scroll, tt.line, tt.h, got, tt.want)
			}
		})
	}
}

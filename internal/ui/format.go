package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/grid"
)

// typeMarker returns the one-letter marker of a content type.
func typeMarker(t content.Type) string {
	switch t {
	case content.TypeText:
		return "[T]"
	case content.TypeCreative:
		return "[C]"
	case content.TypeRecycled:
		return "[R]"
	case content.TypeFlexible:
		return "[F]"
	default:
		return "[?]"
	}
}

func statusSymbol(done bool) string {
	if done {
		return "✓"
	}
	return "○"
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if width <= 0 || utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 3 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-3]) + "..."
}

// FormatBlockLine renders one block as a single list row.
func FormatBlockLine(b content.Block, maxTitleWidth int) string {
	title := truncate(b.Title, maxTitleWidth)
	if b.IsDone {
		title = formatMuted(title)
	}
	line := fmt.Sprintf("%s %s %s", statusSymbol(b.IsDone), formatType(b.Type), title)
	if b.IsPromotional {
		line += " " + formatWarn("$")
	}
	return line + "  " + formatMuted(b.ID)
}

// CharCounter renders "N/500" with a warning once the draft is over the limit.
func CharCounter(b content.Block) string {
	used := content.CharLimit - b.CharsRemaining()
	counter := fmt.Sprintf("%d/%d", used, content.CharLimit)
	if b.OverLimit() {
		return formatWarn(counter + " (over limit)")
	}
	return counter
}

// PrintBlock prints the full detail of a block.
func PrintBlock(w io.Writer, b content.Block) {
	fmt.Fprintf(w, "%s %s\n", formatType(b.Type), formatHeader(b.Title))
	fmt.Fprintf(w, "  id:          %s\n", b.ID)
	fmt.Fprintf(w, "  type:        %s\n", b.Type.Label())
	fmt.Fprintf(w, "  scheduled:   %s %s\n", b.Date, b.TimeSlot)
	fmt.Fprintf(w, "  done:        %t\n", b.IsDone)
	fmt.Fprintf(w, "  promotional: %t\n", b.IsPromotional)
	if len(b.Tags) > 0 {
		fmt.Fprintf(w, "  tags:        %s\n", strings.Join(b.Tags, ", "))
	}
	fmt.Fprintf(w, "  characters:  %s\n", CharCounter(b))
	fmt.Fprintf(w, "  updated:     %s\n", formatMuted(b.UpdatedAt.Local().Format(time.DateTime)))
	if b.Text != "" {
		fmt.Fprintf(w, "\n%s\n", b.Text)
	}
}

// PrintGrid prints the four weeks starting at start, one day per group and
// one line per scheduled block, grouped by slot.
func PrintGrid(w io.Writer, start, today time.Time, buckets grid.Buckets, width int) {
	maxTitle := max(width-30, 20)
	todayKey := dateutil.FormatDay(today)

	for i, week := range grid.GroupIntoWeeks(grid.FourWeekRange(start)) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %s ===\n", formatHeader(grid.WeekLabel(week)))

		for d, day := range week {
			date := dateutil.FormatDay(day)
			label := fmt.Sprintf("%s %s", grid.WeekdayShortName(d), day.Format("Jan 2"))
			if date == todayKey {
				label += " (today)"
			}

			var lines []string
			for _, slot := range content.Slots {
				for _, b := range buckets.At(date, slot) {
					lines = append(lines, fmt.Sprintf("    %-9s %s", slot, FormatBlockLine(b, maxTitle)))
				}
			}
			if len(lines) == 0 {
				fmt.Fprintf(w, "  %s %s\n", label, formatMuted("-"))
				continue
			}
			fmt.Fprintf(w, "  %s\n", label)
			for _, l := range lines {
				fmt.Fprintln(w, l)
			}
		}
	}
}

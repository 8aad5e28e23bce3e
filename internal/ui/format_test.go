package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/grid"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"a long title", 8, "a lon..."},
		{"héllo wörld", 6, "hél..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestTypeMarker(t *testing.T) {
	tests := map[content.Type]string{
		content.TypeText:     "[T]",
		content.TypeCreative: "[C]",
		content.TypeRecycled: "[R]",
		content.TypeFlexible: "[F]",
		"video":              "[?]",
	}
	for typ, want := range tests {
		if got := typeMarker(typ); got != want {
			t.Errorf("typeMarker(%q) = %q, want %q", typ, got, want)
		}
	}
}

func TestCharCounter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"empty", "", "0/500"},
		{"runes", "héllo", "5/500"},
		{"at_limit", strings.Repeat("x", 500), "500/500"},
		{"over", strings.Repeat("x", 501), "501/500 (over limit)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CharCounter(content.Block{Text: tt.text}); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatBlockLine(t *testing.T) {
	b := content.Block{ID: "b1", Type: content.TypeCreative, Title: "Studio tour", IsDone: true, IsPromotional: true}
	if got, want := FormatBlockLine(b, 40), "✓ [C] Studio tour $  b1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrintGrid(t *testing.T) {
	start := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	blocks := []content.Block{
		{ID: "a", Type: content.TypeText, Title: "First", Date: "2026-01-12", TimeSlot: content.SlotEvening},
		{ID: "b", Type: content.TypeText, Title: "Second", Date: "2026-01-12", TimeSlot: content.SlotMorning},
	}
	var out bytes.Buffer
	PrintGrid(&out, start, start, grid.BucketBlocksBySlot(blocks), 80)

	got := out.String()
	if n := strings.Count(got, "=== "); n != 4 {
		t.Errorf("got %d week headers, want 4", n)
	}
	morning := strings.Index(got, "Morning   ○ [T] Second")
	evening := strings.Index(got, "Evening   ○ [T] First")
	if morning < 0 || evening < 0 || morning > evening {
		t.Errorf("slots out of order:\n%s", got)
	}
	for _, want := range []string{"  Mon Jan 12\n", "  Tue Jan 13 -", "  Wed Jan 14 (today) -", "=== Feb 2 - Feb 8 ==="} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q:\n%s", want, got)
		}
	}
}

package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/twine/internal/content"
)

// Color definitions for consistent styling across the UI.
var (
	colorText     = color.New(color.FgBlue, color.Bold)
	colorCreative = color.New(color.FgMagenta, color.Bold)
	colorRecycled = color.New(color.FgGreen, color.Bold)
	colorFlexible = color.New(color.FgYellow, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings: over the character limit, destructive prompts
	colorWarn = color.New(color.FgRed)

	// Muted: for secondary information and completed blocks
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func typeColor(t content.Type) *color.Color {
	switch t {
	case content.TypeText:
		return colorText
	case content.TypeCreative:
		return colorCreative
	case content.TypeRecycled:
		return colorRecycled
	case content.TypeFlexible:
		return colorFlexible
	default:
		return colorMuted
	}
}

// formatType formats a type marker in the type's color.
func formatType(t content.Type) string {
	return typeColor(t).Sprint(typeMarker(t))
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarn formats text as a warning.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// Package commands provides TUI command constructors and message types.
package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent once a draft reached the clipboard.
type CopiedMsg struct {
	Chars int
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyText writes text with write, off the update loop.
func CopyText(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: err}
		}
		return CopiedMsg{Chars: len([]rune(text))}
	}
}

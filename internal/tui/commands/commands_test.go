package commands

import (
	"errors"
	"testing"
)

func TestCopyText(t *testing.T) {
	var written string
	msg := CopyText(func(s string) error {
		written = s
		return nil
	}, "héllo")()

	got, ok := msg.(CopiedMsg)
	if !ok {
		t.Fatalf("CopyText() = %#v, want CopiedMsg", msg)
	}
	if got.Chars != 5 || written != "héllo" {
		t.Errorf("got %d chars, wrote %q", got.Chars, written)
	}
}

func TestCopyText_Error(t *testing.T) {
	boom := errors.New("no clipboard")
	msg := CopyText(func(string) error { return boom }, "x")()

	got, ok := msg.(ErrMsg)
	if !ok || !errors.Is(got.Err, boom) {
		t.Fatalf("CopyText() = %#v, want ErrMsg{%v}", msg, boom)
	}
}

func TestClearStatusAfter(t *testing.T) {
	if ClearStatusAfter(0) == nil {
		t.Fatal("expected a command")
	}
}

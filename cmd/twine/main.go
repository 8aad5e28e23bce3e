package main

import (
	"fmt"
	"io"
	"os"

	"github.com/javiermolinar/twine/internal/ui"
)

func main() {
	if err := run(ui.NewApp(), os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app is the part of ui.App that run drives.
type app interface {
	Execute() error
	Close() error
}

func run(a app, stderr io.Writer) error {
	defer func() {
		if err := a.Close(); err != nil {
			fmt.Fprintf(stderr, "shutdown error: %v\n", err)
		}
	}()
	return a.Execute()
}

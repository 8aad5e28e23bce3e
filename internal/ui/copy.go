package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [id]",
		Short: "Copy a block's draft text to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.mustFind(args[0])
			if err != nil {
				return err
			}
			if b.Text == "" {
				return errors.New("block has no draft text")
			}
			if err := a.copyText(b.Text); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d characters\n", len([]rune(b.Text)))
			return nil
		},
	}
}

package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle the done flag of a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store().ToggleDone(args[0]) {
				return fmt.Errorf("%w: %s", ErrBlockNotFound, args[0])
			}
			b, _ := a.store().BlockByID(args[0])
			state := "not done"
			if b.IsDone {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s as %s\n", b.ID, state)
			return nil
		},
	}
}

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [id]",
		Aliases: []string{"rm"},
		Short:   "Delete a block",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.store().DeleteBlock(args[0]) {
				return fmt.Errorf("%w: %s", ErrBlockNotFound, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted block %s\n", args[0])
			return nil
		},
	}
}

func (a *App) clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every block",
		Long: `Delete every block on the board. This cannot be undone.

Tag vocabularies are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete %d blocks without --yes", a.store().Count())
			}
			n := a.store().Count()
			a.store().ClearAllBlocks()
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d blocks\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")
	return cmd
}

func (a *App) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add sample blocks to an empty board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := a.store().Seed(a.today())
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Board is not empty; nothing seeded.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d sample blocks\n", n)
			return nil
		},
	}
}

package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/drag"
	"github.com/javiermolinar/twine/internal/grid"
)

func (a *App) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [id] [date] [slot]",
		Short: "Move a block to a date and slot",
		Long: `Move a block to a date and time slot. Other blocks in that slot stay put;
a slot can hold any number of blocks.`,
		Example: `  twine move 3f2a... 2026-01-11 evening
  twine move 3f2a... tomorrow 0`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateutil.ParseRelativeDate(args[1], a.today())
			if err != nil {
				return err
			}
			slot, err := content.ParseTimeSlot(args[2])
			if err != nil {
				return err
			}
			date := dateutil.FormatDay(day)
			if !a.store().MoveBlock(args[0], date, slot) {
				return fmt.Errorf("%w: %s", ErrBlockNotFound, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s %s\n", args[0], date, slot)
			return nil
		},
	}
}

func (a *App) dragCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drag [id] [target]",
		Short: "Drop a block onto another block or a slot",
		Long: `Simulate a drag on the board. Dropping onto another block swaps the two;
dropping onto a slot token (slot-YYYY-MM-DD-N) moves the block there.
Any other target leaves the board unchanged.`,
		Example: `  twine drag 3f2a... 9c1b...
  twine drag 3f2a... slot-2026-01-11-2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, target := args[0], args[1]
			if _, err := a.mustFind(id); err != nil {
				return err
			}

			c := a.coordinator()
			c.Start(id)
			out := cmd.OutOrStdout()
			switch c.End(id, target) {
			case drag.OutcomeSwap:
				fmt.Fprintf(out, "Swapped %s with %s\n", id, target)
			case drag.OutcomeMove:
				key, _ := grid.ParseSlotID(target)
				fmt.Fprintf(out, "Moved %s to %s %s\n", id, key.Date, key.Slot)
			default:
				fmt.Fprintf(out, "No change: %q is neither another block nor a slot\n", target)
			}
			return nil
		},
	}
}

package ui

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/grid"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one block in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.mustFind(args[0])
			if err != nil {
				return err
			}
			PrintBlock(cmd.OutOrStdout(), b)
			return nil
		},
	}
}

func (a *App) listCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the four-week board",
		Long: `Print four weeks of the board starting on the Monday on or before --from
(default: planner.start_date from the config, or today).`,
		Example: `  twine list
  twine list --from=next-week`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := a.boardStart()
			if from != "" {
				day, err := dateutil.ParseRelativeDate(from, a.today())
				if err != nil {
					return err
				}
				start = day
			}

			out := cmd.OutOrStdout()
			buckets := do.MustInvoke[*grid.Cache](a.injector).Buckets()
			PrintGrid(out, start, a.today(), buckets, termWidth())

			store := a.store()
			fmt.Fprintf(out, "\n%s\n", formatMuted(fmt.Sprintf("%d blocks, %d done", store.Count(), store.DoneCount())))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First day to show")
	return cmd
}

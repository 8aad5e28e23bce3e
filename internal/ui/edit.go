package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
)

func (a *App) editCmd() *cobra.Command {
	var (
		title string
		text  string
		tags  []string
		promo bool
		date  string
		slot  string
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit fields of a content block",
		Long: `Edit a content block. Only the flags you pass are changed.

Pass --tag="" to clear all tags.`,
		Example: `  twine edit 3f2a... --title="Evening reflection" --slot=evening
  twine edit 3f2a... --promo=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.mustFind(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var u content.BlockUpdate
			if flags.Changed("title") {
				u = u.WithTitle(strings.TrimSpace(title))
			}
			if flags.Changed("text") {
				u = u.WithText(text)
			}
			if flags.Changed("tag") {
				u = u.WithTags(nonEmpty(tags)...)
			}
			if flags.Changed("promo") {
				u = u.WithPromotional(promo)
			}
			if flags.Changed("date") {
				day, err := dateutil.ParseRelativeDate(date, a.today())
				if err != nil {
					return err
				}
				u = u.WithDate(dateutil.FormatDay(day))
			}
			if flags.Changed("slot") {
				ts, err := content.ParseTimeSlot(slot)
				if err != nil {
					return err
				}
				u = u.WithTimeSlot(ts)
			}
			if u.Empty() {
				return fmt.Errorf("nothing to change: pass at least one of --title, --text, --tag, --promo, --date, --slot")
			}

			merged := u.Apply(b)
			if err := a.validator().Validate(inputFromBlock(merged)); err != nil {
				return err
			}
			if u.Tags != nil {
				if err := a.checkTags(merged.Type, merged.Tags); err != nil {
					return err
				}
			}

			a.store().UpdateBlock(b.ID, u)
			fmt.Fprintf(cmd.OutOrStdout(), "Updated block %s\n", b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&text, "text", "", "New draft text")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Replace tags (repeatable)")
	cmd.Flags().BoolVar(&promo, "promo", false, "Promotional flag")
	cmd.Flags().StringVar(&date, "date", "", "New date")
	cmd.Flags().StringVar(&slot, "slot", "", "New time slot")

	return cmd
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
)

// blockInput is the validated shape of a block entered on the command line.
type blockInput struct {
	Title string `flag:"title" validate:"required"`
	Text  string `flag:"text" validate:"max=500"`
	Type  string `flag:"type" validate:"contenttype"`
	Date  string `flag:"date" validate:"day"`
	Slot  int    `flag:"slot" validate:"gte=0,lte=2"`
}

func inputFromBlock(b content.Block) blockInput {
	return blockInput{
		Title: strings.TrimSpace(b.Title),
		Text:  b.Text,
		Type:  string(b.Type),
		Date:  b.Date,
		Slot:  int(b.TimeSlot),
	}
}

// checkTags rejects tags outside the vocabulary offered for the block's type.
func (a *App) checkTags(t content.Type, tags []string) error {
	offered := a.tags().TagsForContent(t)
	for _, tag := range tags {
		if !slices.Contains(offered, tag) {
			return fmt.Errorf("tag %q is not offered for %s content (see 'twine tags list')", tag, t)
		}
	}
	return nil
}

func (a *App) addCmd() *cobra.Command {
	var (
		typ   string
		text  string
		tags  []string
		promo bool
		date  string
		slot  string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a content block",
		Long: `Add a content block to the board.

Dates accept YYYY-MM-DD or relative forms (today, tomorrow, friday,
next-monday). Slots accept 0-2 or morning, afternoon, evening.`,
		Example: `  twine add "Morning Motivation" --type=text --tag="Encourage Dreams" --date=tomorrow --slot=morning
  twine add "Studio tour" --type=creative --date=2026-01-12 --slot=2 --promo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := dateutil.ParseRelativeDate(date, a.today())
			if err != nil {
				return err
			}
			ts, err := content.ParseTimeSlot(slot)
			if err != nil {
				return err
			}

			nb := content.NewBlock{
				Type:          content.Type(strings.ToLower(strings.TrimSpace(typ))),
				Title:         strings.TrimSpace(args[0]),
				Text:          text,
				Tags:          tags,
				IsPromotional: promo,
				Date:          dateutil.FormatDay(day),
				TimeSlot:      ts,
			}
			in := blockInput{
				Title: nb.Title,
				Text:  nb.Text,
				Type:  string(nb.Type),
				Date:  nb.Date,
				Slot:  int(nb.TimeSlot),
			}
			if err := a.validator().Validate(in); err != nil {
				return err
			}
			if err := a.checkTags(nb.Type, nb.Tags); err != nil {
				return err
			}

			id := a.store().AddBlock(nb)
			fmt.Fprintf(cmd.OutOrStdout(), "Created block %s: %s %s %s %s\n",
				id, typeMarker(nb.Type), nb.Title, nb.Date, nb.TimeSlot)
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", string(content.TypeText), "Content type: text, creative, recycled or flexible")
	cmd.Flags().StringVar(&text, "text", "", "Draft text (up to 500 characters)")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().BoolVar(&promo, "promo", false, "Mark as promotional")
	cmd.Flags().StringVar(&date, "date", "", "Scheduled date (default: today)")
	cmd.Flags().StringVar(&slot, "slot", "morning", "Time slot")

	return cmd
}

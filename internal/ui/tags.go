package ui

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/tags"
)

func (a *App) tagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tag vocabularies",
		Long: `Manage the editable tag vocabularies for text and creative content.

Renaming or removing a tag does not change blocks that already carry it.
Recycled and flexible content use fixed lists.`,
	}

	cmd.AddCommand(a.tagsListCmd())
	cmd.AddCommand(a.tagsAddCmd())
	cmd.AddCommand(a.tagsRemoveCmd())
	cmd.AddCommand(a.tagsRenameCmd())
	return cmd
}

func (a *App) tagsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [category]",
		Short: "List tags offered per content type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			types := content.Types
			if len(args) == 1 {
				t, err := content.ParseType(args[0])
				if err != nil {
					return err
				}
				types = []content.Type{t}
			}
			for i, t := range types {
				if i > 0 {
					fmt.Fprintln(out)
				}
				header := t.Label()
				if !content.EditableTags(t) {
					header += formatMuted(" (fixed)")
				}
				fmt.Fprintf(out, "%s %s\n", formatType(t), formatHeader(header))
				for _, tag := range a.tags().TagsForContent(t) {
					fmt.Fprintf(out, "  %s\n", tag)
				}
			}
			return nil
		},
	}
}

func (a *App) tagsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add [category] [tag]",
		Short:   "Add a tag to the text or creative vocabulary",
		Example: `  twine tags add text "Share Win"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := tags.ParseCategory(args[0])
			if err != nil {
				return err
			}
			before := len(a.tags().TagsForType(cat))
			a.tags().AddTag(cat, args[1])
			if len(a.tags().TagsForType(cat)) == before {
				fmt.Fprintf(cmd.OutOrStdout(), "No change: %q is blank or already present\n", args[1])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q to %s tags\n", args[1], cat)
			return nil
		},
	}
}

func (a *App) tagsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [category] [tag]",
		Short: "Remove a tag from a vocabulary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := tags.ParseCategory(args[0])
			if err != nil {
				return err
			}
			before := len(a.tags().TagsForType(cat))
			a.tags().RemoveTag(cat, args[1])
			if len(a.tags().TagsForType(cat)) == before {
				fmt.Fprintf(cmd.OutOrStdout(), "No change: %q is not a %s tag\n", args[1], cat)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from %s tags\n", args[1], cat)
			return nil
		},
	}
}

func (a *App) tagsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename [category] [old] [new]",
		Short:   "Rename a tag in place",
		Example: `  twine tags rename creative Showcase Portfolio`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := tags.ParseCategory(args[0])
			if err != nil {
				return err
			}
			before := a.tags().TagsForType(cat)
			a.tags().RenameTag(cat, args[1], args[2])
			if slices.Equal(before, a.tags().TagsForType(cat)) {
				fmt.Fprintf(cmd.OutOrStdout(), "No change: %q is missing, or %q is blank or already taken\n", args[1], args[2])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", args[1], args[2])
			return nil
		},
	}
}

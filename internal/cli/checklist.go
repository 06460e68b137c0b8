package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"interviewmate/internal/app"
	"interviewmate/internal/models"
)

func NewChecklistCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Show the preparation checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				return printChecklist(cmd, rootOpts, a.Checklist.List(ctx))
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a checklist item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				item, err := a.Checklist.Add(ctx, models.ChecklistItemRequest{Text: strings.Join(args, " ")})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added item %d\n", item.ID)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <item-id>",
		Short: "Check or uncheck an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				item, err := a.Checklist.Toggle(ctx, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checkbox(item.Checked), item.Text)
				return nil
			})
		},
	})

	return cmd
}

func printChecklist(cmd *cobra.Command, rootOpts *RootOptions, items []models.ChecklistItem) error {
	if rootOpts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), items)
	}
	for _, item := range items {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %-14d %s\n", checkbox(item.Checked), item.ID, item.Text)
	}
	return nil
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

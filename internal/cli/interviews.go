package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"interviewmate/internal/app"
	"interviewmate/internal/models"
)

func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		req        models.CreateInterviewRequest
		templateID int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pending interview",
		Long: `Create a pending interview from flags, or from one of the built-in
templates with --template.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				user, err := requireUser(ctx, a)
				if err != nil {
					return err
				}

				var created models.Interview
				if templateID > 0 {
					created, err = a.Interviews.CreateFromTemplate(ctx, templateID, user.UID)
				} else {
					created, err = a.Interviews.Create(ctx, req, user.UID)
				}
				if err != nil {
					return err
				}

				if rootOpts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), created)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created interview %s: %s (%s, %s, %s min)\n",
					created.ID, created.Role, created.Type, created.Difficulty, created.Duration)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Role, "role", "", "job role, e.g. \"Backend Engineer\"")
	cmd.Flags().StringVar(&req.Experience, "experience", "", "beginner | intermediate | advanced")
	cmd.Flags().StringVar(&req.Type, "type", "", "technical | behavioral | mixed")
	cmd.Flags().StringVar(&req.Difficulty, "difficulty", "", "easy | medium | hard")
	cmd.Flags().StringVar(&req.Duration, "duration", "", "15 | 30 | 45 | 60")
	cmd.Flags().StringSliceVar(&req.Technologies, "tech", nil, "technologies (repeatable or comma separated)")
	cmd.Flags().StringVar(&req.Focus, "focus", "", "focus areas")
	cmd.Flags().IntVar(&templateID, "template", 0, "create from a built-in template id")

	return cmd
}

func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List interviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				list := a.Interviews.List(ctx)

				if rootOpts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), list)
				}
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No interviews yet")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tROLE\tTYPE\tDIFFICULTY\tSTATUS\tSCORE\tDATE\tTECHNOLOGIES")
				for _, iv := range list {
					score := "-"
					if iv.IsCompleted() {
						score = fmt.Sprintf("%d%%", iv.Score)
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						iv.ID, iv.Role, iv.Type, iv.Difficulty, iv.Status, score, iv.Date,
						strings.Join(iv.Technologies, ", "))
				}
				return tw.Flush()
			})
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"interviewmate/internal/analytics"
	"interviewmate/internal/app"
)

func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard: scores, technologies and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				achievements, err := a.Achievements.List(ctx)
				if err != nil {
					return err
				}
				dash := analytics.BuildDashboard(a.Interviews.List(ctx), achievements, a.Settings.Streak(ctx))

				if rootOpts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), dash)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Interviews:   %d total, %d completed, %d pending\n", dash.Total, dash.Completed, dash.Pending)
				fmt.Fprintf(out, "Scores:       avg %d%%, best %d%%, lowest %d%%\n", dash.AverageScore, dash.HighestScore, dash.LowestScore)
				fmt.Fprintf(out, "Streak:       %d days\n", dash.Streak)
				fmt.Fprintf(out, "Achievements: %d/%d (%d%%)\n", dash.UnlockedAchievements, dash.TotalAchievements, dash.AchievementProgress)
				for _, ach := range achievements {
					mark := " "
					if ach.Unlocked {
						mark = "x"
					}
					fmt.Fprintf(out, "  [%s] %s %s - %s\n", mark, ach.Icon, ach.Name, ach.Description)
				}
				if len(dash.TopTechnologies) > 0 {
					fmt.Fprintln(out, "Top technologies:")
					for _, tech := range dash.TopTechnologies {
						fmt.Fprintf(out, "  %s (%d)\n", tech.Name, tech.Count)
					}
				}
				return nil
			})
		},
	}
}

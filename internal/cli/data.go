package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"interviewmate/internal/app"
)

func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the profile and interviews as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				user, _ := a.Sessions.Current(ctx)
				doc := a.Data.Export(ctx, user)

				if output == "" || output == "-" {
					return writeJSON(cmd.OutOrStdout(), doc)
				}

				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				if err := writeJSON(f, doc); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d interviews to %s\n", len(doc.Interviews), output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func NewWipeCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Delete all stored data, including the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this deletes all interviews, settings and the session; rerun with --yes to confirm")
			}
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Data.Wipe(ctx); err != nil {
					return err
				}
				a.Live.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), "All data deleted")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the wipe")
	return cmd
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"interviewmate/internal/app"
	"interviewmate/internal/models"
)

func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a local session",
		Long: `Start a local session. Credentials are only checked for shape:
an email address and a password of at least six characters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				resp, err := a.Sessions.Login(ctx, req)
				if err != nil {
					return err
				}
				if rootOpts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), resp)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", resp.User.DisplayName, resp.User.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (min 6 characters)")
	cmd.Flags().StringVar(&req.DisplayName, "name", "", "display name (required with --register)")
	cmd.Flags().BoolVar(&req.Register, "register", false, "create a new account")

	return cmd
}

func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the local session; interviews are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Sessions.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

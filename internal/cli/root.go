// Package cli implements the interviewctl commands on top of the same
// repositories the HTTP server uses.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"interviewmate/internal/app"
	"interviewmate/internal/config"
	"interviewmate/internal/models"
	"interviewmate/internal/session"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Format     string // "json" | "text"

	// open builds the application; tests replace it.
	open func(ctx context.Context, opts *RootOptions) (*app.App, error)
}

var ValidFormats = []string{"text", "json"}

var errNotLoggedIn = errors.New("not logged in: run `interviewctl login` first")

func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "interviewctl",
		Short: "InterviewMate - mock interview practice from the terminal",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "text" && opts.Format != "json" {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default config.yaml or $INTERVIEWMATE_CONFIG)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewPracticeCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewChecklistCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewWipeCommand(opts))

	return cmd
}

func (o *RootOptions) openApp(ctx context.Context) (*app.App, error) {
	if o.open != nil {
		return o.open(ctx, o)
	}
	return openFromConfig(ctx, o)
}

func openFromConfig(ctx context.Context, o *RootOptions) (*app.App, error) {
	cfg, err := config.LoadConfig(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	// the CLI answers immediately; the login delay only shapes the web flow
	cfg.Auth.LoginDelay = 0

	logger := zap.NewNop()
	if o.Verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}
	return app.New(ctx, cfg, logger)
}

// withApp opens the application, runs fn and closes it.
func (o *RootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := o.openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// requireUser returns the stored session.
func requireUser(ctx context.Context, a *app.App) (*models.UserSession, error) {
	user, err := a.Sessions.Current(ctx)
	if errors.Is(err, session.ErrUnauthenticated) {
		return nil, errNotLoggedIn
	}
	return user, err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

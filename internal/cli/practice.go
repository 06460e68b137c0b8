package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"interviewmate/internal/app"
	"interviewmate/internal/models"
)

const (
	commandComplete = "/complete"
	commandQuit     = "/quit"
)

func NewPracticeCommand(rootOpts *RootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "practice <interview-id>",
		Short: "Run a live text interview",
		Long: `Run a live interview in the terminal. Each line you type is one answer.
Type /complete to finish and get a score, or /quit to leave without scoring.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.withApp(cmd, func(ctx context.Context, a *app.App) error {
				if _, err := requireUser(ctx, a); err != nil {
					return err
				}
				return runPractice(ctx, a, args[0], mode, cmd.InOrStdin(), cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", models.ModeText, "text | voice")
	return cmd
}

func runPractice(ctx context.Context, a *app.App, interviewID, mode string, in io.Reader, out io.Writer) error {
	s, err := a.Live.StartSession(ctx, interviewID, mode)
	if err != nil {
		return err
	}
	defer a.Live.Remove(s.ID())

	view := s.View()
	for _, turn := range view.Transcript {
		printTurn(out, turn)
	}
	fmt.Fprintf(out, "(type %s to finish, %s to leave)\n", commandComplete, commandQuit)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case commandQuit:
			fmt.Fprintln(out, "Interview left unfinished")
			return nil
		case commandComplete:
			done, err := s.Complete(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Interview completed. Score: %d%%\n", done.Score)
			return nil
		}

		reply, err := s.Send(ctx, line)
		if err != nil {
			return err
		}
		printTurn(out, reply)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nInterview left unfinished")
	return nil
}

func printTurn(out io.Writer, turn models.Turn) {
	speaker := "You"
	if turn.Role == models.RoleInterviewer {
		speaker = "Interviewer"
	}
	fmt.Fprintf(out, "\n%s: %s\n\n", speaker, turn.Content)
}

package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/cli/session"
	"github.com/thenoetrevino/tagdo/internal/cli/setup"
	"github.com/thenoetrevino/tagdo/internal/cli/task"
	"github.com/thenoetrevino/tagdo/internal/launcher"
	"github.com/thenoetrevino/tagdo/internal/logging"
)

// logCloser is the open log file, closed after the command ran
var logCloser io.Closer

// NewRootCmd builds the tagdo command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagdo",
		Short: "tagdo - a session-scoped to-do list with priority tags",
		Long: `tagdo keeps a short to-do list for the current terminal session.

Run without a subcommand to open the interactive list. Every subcommand
works on the same session, so scripts and the TUI share one list.`,
		Args:          cli.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Logging is best-effort; commands work without a log file
			closer, err := logging.Init()
			if err != nil {
				slog.Debug("logging disabled", "error", err)
				return
			}
			logCloser = closer
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logCloser != nil {
				_ = logCloser.Close()
				logCloser = nil
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID, _ := cmd.Flags().GetString("session")
			ephemeral, _ := cmd.Flags().GetBool("ephemeral")
			return launcher.Launch(launcher.Options{
				SessionID: sessionID,
				Ephemeral: ephemeral,
			})
		},
	}

	rootCmd.PersistentFlags().String("session", "", "Session ID (default $TAGDO_SESSION, then the parent shell)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep tasks in memory only")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.Exit(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.Commands()...)
	rootCmd.AddCommand(session.SessionCmd())
	rootCmd.AddCommand(setup.ConfigCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

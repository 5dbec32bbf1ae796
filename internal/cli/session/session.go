// Package session holds the cli command for inspecting and switching the
// storage session, e.g., tagdo session ...
package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/storage"
)

// SessionCmd returns the session subcommand
func SessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show, reset, or switch the storage session",
		Long: `Every invocation from the same shell shares one session, like a browser
tab. The session is chosen from --session, then the TAGDO_SESSION
environment variable, then the parent process.

  tagdo session                    # Show the current session
  tagdo session --reset            # Remove every task of this session
  eval $(tagdo session --new)      # Start a fresh session in this shell
  tagdo session --list             # Sessions stored on disk

--new outputs a shell command that should be evaluated. The session
variable is set in your current shell only.`,
		Args: cli.ExactArgs(0),
		RunE: runSession,
	}

	cmd.Flags().Bool("reset", false, "Remove every item of the current session")
	cmd.Flags().Bool("new", false, "Print an export line for a fresh session ID")
	cmd.Flags().Bool("list", false, "List sessions with stored items")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cli.NewFormatter(cmd)

	resetFlag, _ := cmd.Flags().GetBool("reset")
	newFlag, _ := cmd.Flags().GetBool("new")
	listFlag, _ := cmd.Flags().GetBool("list")

	set := 0
	for _, b := range []bool{resetFlag, newFlag, listFlag} {
		if b {
			set++
		}
	}
	if set > 1 {
		return cli.ReportError(f, cli.ExitUsage, "INVALID_FLAGS",
			errors.New("--reset, --new and --list are mutually exclusive"), "")
	}

	// --new only emits shell; it does not touch storage
	if newFlag {
		id := storage.NewSessionID()
		if f.JSON {
			return f.WriteJSON(map[string]interface{}{"success": true, "session": id})
		}
		_, _ = fmt.Fprintf(f.Out, "export %s=%s\n", storage.SessionEnvVar, id)
		if !f.Quiet {
			_, _ = fmt.Fprintf(f.Err, "Now using session %s\n", id)
		}
		return nil
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer cli.CloseCLI(c)

	switch {
	case resetFlag:
		removed := c.App.Store.Len()
		if err := c.App.ResetSession(ctx); err != nil {
			return cli.ReportError(f, cli.ExitError, "RESET_FAILED", err, "")
		}
		if f.JSON {
			return f.WriteJSON(map[string]interface{}{
				"success": true,
				"session": c.App.SessionID(),
				"removed": removed,
			})
		}
		f.Printf("Session %s reset (%d task(s) removed)\n", c.App.SessionID(), removed)
		return nil

	case listFlag:
		db, ok := c.App.Store.Storage().(*storage.SQLite)
		if !ok {
			return cli.ReportError(f, cli.ExitUsage, "NOT_PERSISTENT",
				errors.New("session listing needs on-disk storage"), "Run without --ephemeral")
		}
		sessions, err := db.Sessions(ctx)
		if err != nil {
			return cli.ReportError(f, cli.ExitError, "LIST_FAILED", err, "")
		}
		if f.JSON {
			return f.WriteJSON(map[string]interface{}{
				"success":  true,
				"current":  c.App.SessionID(),
				"sessions": sessions,
			})
		}
		for _, s := range sessions {
			marker := "  "
			if s == c.App.SessionID() {
				marker = "* "
			}
			if f.Quiet {
				marker = ""
			}
			_, _ = fmt.Fprintf(f.Out, "%s%s\n", marker, s)
		}
		return nil
	}

	if f.JSON {
		return f.WriteJSON(map[string]interface{}{
			"success": true,
			"session": c.App.SessionID(),
			"tasks":   c.App.Store.Len(),
			"env":     os.Getenv(storage.SessionEnvVar) != "",
		})
	}
	if f.Quiet {
		_, _ = fmt.Fprintln(f.Out, c.App.SessionID())
		return nil
	}
	f.Printf("Session: %s\n", c.App.SessionID())
	f.Printf("Tasks:   %d\n", c.App.Store.Len())
	return nil
}

package task

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
)

// confirmClear asks before removing completed tasks. Replaced in tests.
var confirmClear = func(count int) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Remove %d completed task(s)?", count)).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	return ok, err
}

// ClearCmd returns the clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every completed task",
		Long: `Remove every completed task, keeping the order of the rest.

Asks for confirmation unless --yes, --json, or --quiet is given.

Examples:
  tagdo clear

  # Non-interactive
  tagdo clear --yes
`,
		Args: cli.ExactArgs(0),
		RunE: runClear,
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cli.NewFormatter(cmd)
	yes, _ := cmd.Flags().GetBool("yes")

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer cli.CloseCLI(c)

	pending := c.App.Store.Stats().Completed
	if pending > 0 && !yes && !f.JSON && !f.Quiet {
		ok, err := confirmClear(pending)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				f.Printf("Cancelled\n")
				return nil
			}
			return cli.ReportError(f, cli.ExitError, "PROMPT_FAILED", err, "Pass --yes to skip the prompt")
		}
		if !ok {
			f.Printf("Cancelled\n")
			return nil
		}
	}

	removed := c.App.Store.ClearCompleted(ctx)

	if f.JSON {
		return f.WriteJSON(map[string]interface{}{
			"success": true,
			"removed": removed,
		})
	}
	if f.Quiet {
		_, _ = fmt.Fprintf(f.Out, "%d\n", removed)
		return nil
	}

	if removed == 0 {
		f.Printf("No completed tasks to clear\n")
		return nil
	}
	f.Printf("Removed %d completed task(s)\n", removed)
	return nil
}

package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// DoneCmd returns the done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed state",
		Long: `Toggle whether a task is completed. Running it twice restores the task.

Examples:
  tagdo done 1700000000000

  # JSON output for agents
  tagdo done 1700000000000 --json
`,
		Args: cli.ExactArgs(1),
		RunE: runDone,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	return withTask(cmd, args[0], func(c *cli.CLI, id int64) bool {
		return c.App.Store.ToggleComplete(cmd.Context(), id)
	}, func(f *cli.OutputFormatter, t models.Task) {
		state := "pending"
		if t.Completed {
			state = "completed"
		}
		f.Printf("Task %d marked %s\n", t.ID, state)
	})
}

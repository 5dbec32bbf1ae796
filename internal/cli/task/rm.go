package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// RmCmd returns the rm subcommand
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task from the list. The order of the remaining tasks is kept.

Examples:
  tagdo rm 1700000000000
`,
		Args: cli.ExactArgs(1),
		RunE: runRm,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	return withTask(cmd, args[0], func(c *cli.CLI, id int64) bool {
		return c.App.Store.Delete(cmd.Context(), id)
	}, func(f *cli.OutputFormatter, t models.Task) {
		f.Printf("Task %d deleted\n", t.ID)
	})
}

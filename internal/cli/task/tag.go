package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/cli/styles"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// TagCmd returns the tag subcommand
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <id>",
		Short: "Advance a task's tag to the next label",
		Long: `Advance a task's tag one step through the fixed label order, wrapping
from the last label back to NONE. Run 'tagdo tags' for the order.

Examples:
  tagdo tag 1700000000000
`,
		Args: cli.ExactArgs(1),
		RunE: runTag,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runTag(cmd *cobra.Command, args []string) error {
	return withTask(cmd, args[0], func(c *cli.CLI, id int64) bool {
		return c.App.Store.CycleTag(cmd.Context(), id)
	}, func(f *cli.OutputFormatter, t models.Task) {
		f.Printf("Task %d tagged %s\n", t.ID, styles.RenderTagChip(t.Tag))
	})
}

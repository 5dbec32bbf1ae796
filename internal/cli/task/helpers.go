package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// withTask runs an id-addressed mutation and reports the task afterwards.
// A mutation that reports no change means the id matched nothing.
func withTask(cmd *cobra.Command, arg string, mutate func(*cli.CLI, int64) bool, human func(*cli.OutputFormatter, models.Task)) error {
	f := cli.NewFormatter(cmd)

	id, err := cli.ParseTaskID(arg)
	if err != nil {
		return cli.ReportError(f, cli.ExitUsage, "INVALID_TASK_ID", err, "")
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer cli.CloseCLI(c)

	// Deleted tasks are gone after the mutation, so capture first
	before, found := c.App.Store.Get(id)
	if !found || !mutate(c, id) {
		return cli.ReportError(f, cli.ExitNotFound, "TASK_NOT_FOUND",
			fmt.Errorf("%w: %d", models.ErrTaskNotFound, id),
			"Use 'tagdo list' to see task IDs")
	}

	after, ok := c.App.Store.Get(id)
	if !ok {
		after = before
	}

	if f.JSON || f.Quiet {
		return f.Success(after)
	}
	human(f, after)
	return nil
}

package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// MoveCmd returns the move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a task to another position",
		Long: `Move the task at position <from> to position <to>. Positions are 0-based
as shown by 'tagdo list'. The tasks in between shift by one.

Examples:
  # [A, B, C] becomes [B, C, A]
  tagdo move 0 2
`,
		Args: cli.ExactArgs(2),
		RunE: runMove,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cli.NewFormatter(cmd)

	from, err := cli.ParsePosition(args[0])
	if err != nil {
		return cli.ReportError(f, cli.ExitUsage, "INVALID_POSITION", err, "")
	}
	to, err := cli.ParsePosition(args[1])
	if err != nil {
		return cli.ReportError(f, cli.ExitUsage, "INVALID_POSITION", err, "")
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer cli.CloseCLI(c)

	n := c.App.Store.Len()
	for _, pos := range []int{from, to} {
		if pos < 0 || pos >= n {
			return cli.ReportError(f, cli.ExitValidation, "POSITION_OUT_OF_RANGE",
				fmt.Errorf("%w: %d (list has %d tasks)", models.ErrPositionOutOfRange, pos, n),
				"Use 'tagdo list' to see positions")
		}
	}

	task := c.App.Store.Tasks()[from]
	moved := c.App.Store.Reorder(ctx, from, to)

	if f.JSON || f.Quiet {
		return f.Success(task)
	}
	if !moved {
		f.Printf("Task %d already at position %d (no change)\n", task.ID, from)
		return nil
	}
	f.Printf("Task %d moved from %d to %d\n", task.ID, from, to)
	return nil
}

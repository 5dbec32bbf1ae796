package task

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/cli/styles"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a new task",
		Long: `Add a task to the current session's list.

The words after "add" are joined with single spaces. Blank text is ignored
and the command exits successfully without printing anything.

Examples:
  # Simple task (human-readable output)
  tagdo add Buy milk

  # Tagged task
  tagdo add "Ship release" --tag="urgent & important"

  # Quiet mode for bash capture
  TASK_ID=$(tagdo add Buy milk --quiet)
`,
		Args: cli.MinimumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("tag", "", "Tag label (case-insensitive, default NONE)")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f := cli.NewFormatter(cmd)

	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tagFlag, _ := cmd.Flags().GetString("tag")
	var tag string
	if cmd.Flags().Changed("tag") {
		label, err := cli.ParseTag(tagFlag)
		if err != nil {
			return cli.ReportError(f, cli.ExitValidation, "INVALID_TAG", err,
				"Use 'tagdo tags' to see available tags")
		}
		tag = label
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer cli.CloseCLI(c)

	var task models.Task
	var ok bool
	if tag != "" {
		task, ok = c.App.Store.Add(ctx, text, tag)
	} else {
		task, ok = c.App.AddTask(ctx, text)
	}
	if !ok {
		return cli.ReportError(f, cli.ExitError, "ADD_FAILED", errors.New("task was not added"), "")
	}

	if f.JSON || f.Quiet {
		return f.Success(task)
	}

	f.Printf("%s Added task %d %s %s\n",
		styles.SuccessStyle.Render("✓"), task.ID, styles.RenderTagChip(task.Tag), task.Text)
	return nil
}

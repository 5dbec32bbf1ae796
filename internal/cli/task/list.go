package task

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/cli/styles"
	"github.com/thenoetrevino/tagdo/internal/models"
)

const renderWidth = 80

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in display order",
		Long: `List the tasks of the current session in display order.

Examples:
  # All tasks
  tagdo list

  # Only pending urgent tasks
  tagdo list --tag=urgent --pending

  # Markdown rendering
  tagdo list --render

  # JSON output for agents
  tagdo list --json
`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	cmd.Flags().String("tag", "", "Only tasks with this tag")
	cmd.Flags().Bool("pending", false, "Only tasks that are not completed")
	cmd.Flags().Bool("completed", false, "Only completed tasks")
	cmd.Flags().Bool("render", false, "Render the list as Markdown")
	cli.AddOutputFlags(cmd)

	return cmd
}

// listFilter selects tasks for display
type listFilter struct {
	tag       string
	pending   bool
	completed bool
}

func (lf listFilter) apply(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if lf.tag != "" && t.Tag != lf.tag {
			continue
		}
		if lf.pending && t.Completed {
			continue
		}
		if lf.completed && !t.Completed {
			continue
		}
		out = append(out, t)
	}
	return out
}

func runList(cmd *cobra.Command, args []string) error {
	f := cli.NewFormatter(cmd)

	var lf listFilter
	lf.pending, _ = cmd.Flags().GetBool("pending")
	lf.completed, _ = cmd.Flags().GetBool("completed")
	render, _ := cmd.Flags().GetBool("render")

	if lf.pending && lf.completed {
		return cli.ReportError(f, cli.ExitUsage, "INVALID_FLAGS",
			errors.New("--pending and --completed are mutually exclusive"), "")
	}

	if cmd.Flags().Changed("tag") {
		tagFlag, _ := cmd.Flags().GetString("tag")
		label, err := cli.ParseTag(tagFlag)
		if err != nil {
			return cli.ReportError(f, cli.ExitValidation, "INVALID_TAG", err,
				"Use 'tagdo tags' to see available tags")
		}
		lf.tag = label
	}

	c, err := cli.FromCommand(cmd)
	if err != nil {
		return cli.ReportError(f, cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer cli.CloseCLI(c)

	tasks := lf.apply(c.App.Store.Tasks())

	if f.JSON {
		return f.WriteJSON(map[string]interface{}{
			"success": true,
			"tasks":   tasks,
			"stats":   models.CountTasks(tasks),
		})
	}

	if f.Quiet {
		for _, t := range tasks {
			_, _ = fmt.Fprintf(f.Out, "%d\n", t.ID)
		}
		return nil
	}

	if render {
		f.Printf("%s", cli.RenderMarkdown(cli.TasksMarkdown(tasks), renderWidth))
		return nil
	}

	if len(tasks) == 0 {
		f.Printf("No tasks found\n")
		return nil
	}

	f.Printf("%s\n", styles.TitleStyle.Render("TODO list"))
	for i, t := range tasks {
		f.Printf("%2d. %s %d %s %s\n", i, styles.Checkbox(t.Completed), t.ID,
			styles.RenderTagChip(t.Tag), styles.RenderTaskText(t.Text, t.Completed))
	}
	stats := models.CountTasks(tasks)
	f.Printf("%s\n", styles.SubtitleStyle.Render(
		fmt.Sprintf("%d tasks, %d completed, %d pending", stats.Total, stats.Completed, stats.Pending)))
	return nil
}

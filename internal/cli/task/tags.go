package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/cli"
	"github.com/thenoetrevino/tagdo/internal/cli/styles"
	"github.com/thenoetrevino/tagdo/internal/tags"
)

// TagsCmd returns the tags subcommand
func TagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tag labels in cycle order",
		Args:  cli.ExactArgs(0),
		RunE:  runTags,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	f := cli.NewFormatter(cmd)
	labels := tags.Labels()

	if f.JSON {
		return f.WriteJSON(map[string]interface{}{
			"success": true,
			"tags":    labels,
			"default": tags.Default(),
		})
	}
	if f.Quiet {
		for _, l := range labels {
			_, _ = fmt.Fprintln(f.Out, l)
		}
		return nil
	}

	for i, l := range labels {
		suffix := ""
		if l == tags.Default() {
			suffix = styles.SubtitleStyle.Render(" (default)")
		}
		f.Printf("%d. %s%s\n", i, styles.RenderTagChip(l), suffix)
	}
	return nil
}

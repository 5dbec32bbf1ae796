package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// TasksMarkdown renders the list as a Markdown task list
func TasksMarkdown(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("# TODO list\n\n")
	if len(tasks) == 0 {
		b.WriteString("_No tasks_\n")
		return b.String()
	}
	for _, t := range tasks {
		text := t.Text
		if t.Completed {
			text = "~~" + text + "~~"
		}
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s **%s** `%d`\n", mark, text, t.Tag, t.ID)
	}
	return b.String()
}

// RenderMarkdown renders Markdown for the terminal with glamour. When the
// renderer cannot be built the raw Markdown is returned.
func RenderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}

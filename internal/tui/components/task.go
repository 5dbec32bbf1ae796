package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// TaskProps describes one list row
type TaskProps struct {
	Task     models.Task
	Selected bool
	Width    int
}

// minTextWidth keeps wrapping sane on very narrow terminals
const minTextWidth = 10

// RenderTask renders a task as "> [x] text [TAG]". Text longer than the row
// wraps under itself, and completed text is struck through.
func RenderTask(props TaskProps, s Styles) string {
	cursor := "  "
	if props.Selected {
		cursor = s.Cursor.Render("> ")
	}

	box := "[ ] "
	if props.Task.Completed {
		box = "[x] "
	}

	chip := s.RenderTagChip(props.Task.Tag)
	prefixWidth := lipgloss.Width(cursor) + lipgloss.Width(box)

	textWidth := props.Width - prefixWidth - lipgloss.Width(chip) - 1
	if textWidth < minTextWidth {
		textWidth = minTextWidth
	}

	textStyle := s.Normal
	if props.Task.Completed {
		textStyle = s.Completed
	}

	lines := strings.Split(wordwrap.String(props.Task.Text, textWidth), "\n")
	pad := strings.Repeat(" ", prefixWidth)

	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(cursor + box)
		} else {
			b.WriteString("\n" + pad)
		}
		b.WriteString(textStyle.Render(line))
		if i == len(lines)-1 {
			b.WriteString(" " + chip)
		}
	}

	row := b.String()
	if props.Selected {
		return s.Selected.Render(row)
	}
	return row
}

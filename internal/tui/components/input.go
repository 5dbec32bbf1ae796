package components

import (
	"github.com/charmbracelet/lipgloss"
)

// InputProps describes the new-task input row
type InputProps struct {
	// Field is the rendered text input
	Field string
	// Tag is the tag the next task will get
	Tag     string
	Focused bool
	Width   int
}

// RenderInput renders the bordered text input followed by the pending tag
func RenderInput(props InputProps, s Styles) string {
	box := s.InputBlur
	if props.Focused {
		box = s.InputBox
	}

	chip := s.RenderTagChip(props.Tag)
	// border and padding take two columns on each side
	boxWidth := props.Width - lipgloss.Width(chip) - 5
	if boxWidth > 0 {
		box = box.Width(boxWidth)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, box.Render(props.Field), " ", chip)
}

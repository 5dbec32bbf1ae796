package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/tagdo/internal/models"
)

// StatusBarProps describes the bottom line
type StatusBarProps struct {
	Width   int
	Session string
	Stats   models.TaskStats
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "tagdo · session <id>"
// Right side: counts and "press ? for help"
func RenderStatusBar(props StatusBarProps, s Styles) string {
	leftText := "tagdo · session " + props.Session
	rightText := fmt.Sprintf("%d tasks, %d done · press ? for help", props.Stats.Total, props.Stats.Completed)

	leftRendered := s.Subtle.Render(leftText)
	rightRendered := s.Subtle.Render(rightText)

	// Calculate space between left and right text
	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	gapWidth := props.Width - leftWidth - rightWidth
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/tagdo/internal/config"
)

var (
	// Text styles
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	ValueStyle     lipgloss.Style
	CompletedStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style

	scheme = config.DefaultColorScheme()
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	scheme = colors

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	CompletedStyle = lipgloss.NewStyle().
		Strikethrough(true).
		Foreground(lipgloss.Color(colors.Completed))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderTagChip renders a tag as "[LABEL]" in the tag's color
func RenderTagChip(label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.TagColor(label))).
		Bold(true).
		Render("[" + label + "]")
}

// RenderTaskText renders task text, struck through when completed
func RenderTaskText(text string, completed bool) string {
	if completed {
		return CompletedStyle.Render(text)
	}
	return ValueStyle.Render(text)
}

// Checkbox renders the completion marker
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

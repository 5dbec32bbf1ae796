package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/tagdo/internal/config"
)

// Styles holds the lipgloss styles of the TUI, built from a color scheme
type Styles struct {
	Scheme config.ColorScheme

	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Normal     lipgloss.Style
	Completed  lipgloss.Style
	Selected   lipgloss.Style
	Cursor     lipgloss.Style
	InputBox   lipgloss.Style
	InputBlur  lipgloss.Style
	Info       lipgloss.Style
	Error      lipgloss.Style
	HelpHeader lipgloss.Style
	HelpKey    lipgloss.Style
}

// NewStyles builds the TUI styles for the given color scheme
func NewStyles(scheme config.ColorScheme) Styles {
	return Styles{
		Scheme: scheme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),
		Completed: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(scheme.Completed)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(scheme.SelectedBg)),
		Cursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.InputBorder)).
			Padding(0, 1),
		InputBlur: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Subtle)).
			Padding(0, 1),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.InfoFg)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.ErrorFg)),
		HelpHeader: lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color(scheme.Accent)),
		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),
	}
}

// RenderTagChip renders a tag label as a small colored chip
func (s Styles) RenderTagChip(label string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Scheme.TagColor(label))).
		Bold(true).
		Render("[" + label + "]")
}

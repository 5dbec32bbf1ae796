package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/tagdo/internal/tui/components"
	"github.com/thenoetrevino/tagdo/internal/tui/state"
)

// defaultWidth is used until the first WindowSizeMsg arrives
const defaultWidth = 80

// chromeRows are the lines taken by the title, input box, and status bar
const chromeRows = 8

// View renders the title, the input row, the task list, and the status bar
func (m Model) View() string {
	width := m.uiState.Width()
	if width <= 0 {
		width = defaultWidth
	}

	if m.uiState.Mode() == state.HelpMode {
		return components.RenderHelp(m.keys, m.styles)
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("TODO list"))
	b.WriteString("  ")
	b.WriteString(m.styles.Subtle.Render("(" + m.keys.ClearCompleted + " deletes DONE)"))
	b.WriteString("\n")

	b.WriteString(components.RenderInput(components.InputProps{
		Field:   m.input.View(),
		Tag:     m.app.Tags.Selected(),
		Focused: m.uiState.Mode() == state.InputMode,
		Width:   width,
	}, m.styles))
	b.WriteString("\n\n")

	tasks := m.app.Store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.styles.Subtle.Render("  No tasks yet. Type one above and press enter."))
		b.WriteString("\n")
	} else {
		listFocused := m.uiState.Mode() == state.ListMode
		rendered := make([]string, len(tasks))
		heights := make([]int, len(tasks))
		for i, task := range tasks {
			rendered[i] = components.RenderTask(components.TaskProps{
				Task:     task,
				Selected: listFocused && i == m.uiState.Cursor(),
				Width:    width,
			}, m.styles)
			heights[i] = lipgloss.Height(rendered[i])
		}

		start, end := m.uiState.VisibleRange(heights, m.uiState.Height()-chromeRows)
		for _, row := range rendered[start:end] {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	for _, n := range m.NotificationState.All() {
		style := m.styles.Info
		if n.Level == state.LevelError {
			style = m.styles.Error
		}
		b.WriteString(style.Render(n.Message))
		b.WriteString("\n")
	}

	b.WriteString(components.RenderStatusBar(components.StatusBarProps{
		Width:   width,
		Session: m.app.SessionID(),
		Stats:   m.app.Store.Stats(),
	}, m.styles))

	return b.String()
}

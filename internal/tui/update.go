package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/tagdo/internal/tui/state"
)

// Update handles all incoming messages and dispatches on the current mode
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetDimensions(msg.Width, msg.Height)
		m.input.Width = m.inputWidth()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.uiState.Mode() {
		case state.HelpMode:
			m.uiState.HideHelp()
			return m, nil
		case state.ListMode:
			return m.handleListMode(msg)
		default:
			return m.handleInputMode(msg)
		}
	}

	// Everything else (cursor blink) belongs to the input
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// inputWidth is the text field width left after the border and tag chip
func (m Model) inputWidth() int {
	w := m.uiState.Width() - 30
	if w < 10 {
		w = 10
	}
	return w
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	km := m.keys
	switch msg.String() {
	case "enter":
		return m.handleAddTask()
	case km.CyclePendingTag:
		m.app.Tags.CycleSelected()
		return m, nil
	case km.FocusList:
		m.focusList()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleAddTask adds the typed text with the pending tag. Blank input is
// ignored and left in place.
func (m Model) handleAddTask() (tea.Model, tea.Cmd) {
	task, ok := m.app.AddTask(m.ctx, m.input.Value())
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.uiState.SetCursor(m.app.Store.Len()-1, m.app.Store.Len())
	m.NotificationState.Info(fmt.Sprintf("Added %q", task.Text))
	return m, nil
}

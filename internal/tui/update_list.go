package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/tagdo/internal/models"
)

func (m Model) handleListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.keys

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.uiState.ShowHelp()
		return m, nil
	case km.FocusInput, "i":
		return m, m.focusInput()
	case km.NextTask, "down":
		m.uiState.MoveCursor(1, m.app.Store.Len())
		return m, nil
	case km.PrevTask, "up":
		m.uiState.MoveCursor(-1, m.app.Store.Len())
		return m, nil
	case km.ToggleComplete:
		return m.handleToggleComplete()
	case km.CycleTag, "enter":
		return m.handleCycleTag()
	case km.DeleteTask:
		return m.handleDeleteTask()
	case km.ClearCompleted:
		return m.handleClearCompleted()
	case km.MoveTaskUp:
		return m.handleMoveTask(-1)
	case km.MoveTaskDown:
		return m.handleMoveTask(1)
	}

	return m, nil
}

// selected returns the task under the cursor
func (m Model) selected() (models.Task, bool) {
	tasks := m.app.Store.Tasks()
	i := m.uiState.Cursor()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

func (m Model) handleToggleComplete() (tea.Model, tea.Cmd) {
	if t, ok := m.selected(); ok {
		m.app.Store.ToggleComplete(m.ctx, t.ID)
	}
	return m, nil
}

func (m Model) handleCycleTag() (tea.Model, tea.Cmd) {
	if t, ok := m.selected(); ok {
		m.app.Store.CycleTag(m.ctx, t.ID)
	}
	return m, nil
}

func (m Model) handleDeleteTask() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	if m.app.Store.Delete(m.ctx, t.ID) {
		m.uiState.ClampCursor(m.app.Store.Len())
		m.NotificationState.Info(fmt.Sprintf("Deleted %q", t.Text))
	}
	return m, nil
}

func (m Model) handleClearCompleted() (tea.Model, tea.Cmd) {
	removed := m.app.Store.ClearCompleted(m.ctx)
	if removed > 0 {
		m.uiState.ClampCursor(m.app.Store.Len())
		m.NotificationState.Info(fmt.Sprintf("Removed %d completed task(s)", removed))
	}
	return m, nil
}

// handleMoveTask moves the selected task one slot and keeps it selected
func (m Model) handleMoveTask(delta int) (tea.Model, tea.Cmd) {
	from := m.uiState.Cursor()
	to := from + delta
	if m.app.Store.Reorder(m.ctx, from, to) {
		m.uiState.SetCursor(to, m.app.Store.Len())
	}
	return m, nil
}

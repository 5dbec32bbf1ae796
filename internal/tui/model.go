package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/tagdo/internal/app"
	"github.com/thenoetrevino/tagdo/internal/config"
	"github.com/thenoetrevino/tagdo/internal/tui/components"
	"github.com/thenoetrevino/tagdo/internal/tui/state"
)

// inputCharLimit bounds a single task's text
const inputCharLimit = 500

// Model represents the application state for the TUI
type Model struct {
	ctx context.Context
	app *app.App

	input textinput.Model

	uiState           *state.UIState
	NotificationState *state.NotificationState

	keys   config.KeyMappings
	styles components.Styles
}

// InitialModel creates the TUI model over an opened App. The text input
// starts focused, like the page's autofocused field.
func InitialModel(ctx context.Context, a *app.App) Model {
	input := textinput.New()
	input.Placeholder = "Add a new task"
	input.CharLimit = inputCharLimit
	input.Prompt = "› "
	input.Focus()

	return Model{
		ctx:               ctx,
		app:               a,
		input:             input,
		uiState:           state.NewUIState(),
		NotificationState: state.NewNotificationState(),
		keys:              a.Config.KeyMappings,
		styles:            components.NewStyles(a.Config.ColorScheme),
	}
}

// Init starts the cursor blink of the focused input
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the current interaction mode
func (m Model) Mode() state.Mode {
	return m.uiState.Mode()
}

// Cursor returns the index of the selected task
func (m Model) Cursor() int {
	return m.uiState.Cursor()
}

// InputValue returns the text typed so far
func (m Model) InputValue() string {
	return m.input.Value()
}

// focusInput moves keyboard focus to the text input
func (m *Model) focusInput() tea.Cmd {
	m.uiState.SetMode(state.InputMode)
	return m.input.Focus()
}

// focusList moves keyboard focus to the task list
func (m *Model) focusList() {
	m.input.Blur()
	m.uiState.SetMode(state.ListMode)
	m.uiState.ClampCursor(m.app.Store.Len())
}

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/thenoetrevino/tagdo/internal/app"
)

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(InitialModel(ctx, a), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/tagdo/internal/app"
	"github.com/thenoetrevino/tagdo/internal/config"
	"github.com/thenoetrevino/tagdo/internal/logging"
	"github.com/thenoetrevino/tagdo/internal/tui"
)

// Options selects the session the TUI opens
type Options struct {
	SessionID string
	Ephemeral bool
}

// Launch starts the TUI application
func Launch(opts Options) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	application, err := app.Open(ctx,
		app.WithConfig(cfg),
		app.WithLogger(logging.Logger),
		app.WithSessionID(opts.SessionID),
		app.WithEphemeral(opts.Ephemeral),
	)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	// session storage cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing session storage", "error", err)
		}
	}()

	slog.Info("starting tui", "session", application.SessionID(), "tasks", application.Store.Len())

	if err := tui.Run(ctx, application); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received, cleaning up")
			return nil
		}
		return err
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/app"
	"github.com/thenoetrevino/tagdo/internal/cli/styles"
	"github.com/thenoetrevino/tagdo/internal/config"
	"github.com/thenoetrevino/tagdo/internal/logging"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with the task store

	// borrowed is true when App came from the command context and is owned
	// by the caller (tests, the TUI launcher)
	borrowed bool
}

// NewCLI loads the config and opens the session named by sessionID (or the
// resolved default session when empty)
func NewCLI(ctx context.Context, sessionID string, ephemeral bool) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	application, err := app.Open(ctx,
		app.WithConfig(cfg),
		app.WithLogger(logging.Logger),
		app.WithSessionID(sessionID),
		app.WithEphemeral(ephemeral),
	)
	if err != nil {
		return nil, err
	}

	return &CLI{App: application}, nil
}

// FromCommand returns the CLI for a running command. An App injected into the
// command context is reused; otherwise one is opened from the persistent
// --session and --ephemeral flags.
func FromCommand(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a, ok := AppFromContext(ctx); ok {
		return &CLI{App: a, borrowed: true}, nil
	}

	sessionID, _ := cmd.Flags().GetString("session")
	ephemeral, _ := cmd.Flags().GetBool("ephemeral")
	return NewCLI(ctx, sessionID, ephemeral)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}

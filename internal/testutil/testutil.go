package testutil

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tagdo/internal/app"
	"github.com/thenoetrevino/tagdo/internal/config"
	"github.com/thenoetrevino/tagdo/internal/models"
	"github.com/thenoetrevino/tagdo/internal/storage"
)

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetupTestApp creates an App over in-memory session storage
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	return SetupTestAppWithStorage(t, storage.NewMemory(), opts...)
}

// SetupTestAppWithStorage creates an App over the given storage and closes it
// on test cleanup
func SetupTestAppWithStorage(t *testing.T, st storage.Storage, opts ...app.Option) *app.App {
	t.Helper()

	base := []app.Option{
		app.WithConfig(config.Default()),
		app.WithLogger(DiscardLogger()),
	}
	a := app.New(context.Background(), st, append(base, opts...)...)
	t.Cleanup(func() {
		_ = a.Close()
	})
	return a
}

// SetupSQLiteApp creates an App over an in-memory SQLite session database
func SetupSQLiteApp(t *testing.T, sessionID string) *app.App {
	t.Helper()

	st, err := storage.OpenSQLite(context.Background(), storage.SQLiteOptions{
		Path:      ":memory:",
		SessionID: sessionID,
	})
	if err != nil {
		t.Fatalf("Failed to open test session storage: %v", err)
	}
	return SetupTestAppWithStorage(t, st)
}

// CreateTestTask adds a task through the store and returns it
func CreateTestTask(t *testing.T, a *app.App, text, tag string) models.Task {
	t.Helper()

	task, ok := a.Store.Add(context.Background(), text, tag)
	if !ok {
		t.Fatalf("Failed to create test task %q", text)
	}
	return task
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}

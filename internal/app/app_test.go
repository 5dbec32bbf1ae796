package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tagdo/internal/config"
	"github.com/thenoetrevino/tagdo/internal/models"
	"github.com/thenoetrevino/tagdo/internal/storage"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNew(t *testing.T) {
	app := New(context.Background(), storage.NewMemory(), WithLogger(discard))

	require.NotNil(t, app)
	assert.NotNil(t, app.Store)
	assert.NotNil(t, app.Tags)
	assert.NotNil(t, app.Config)
	assert.Equal(t, "memory", app.SessionID())
}

func TestClose(t *testing.T) {
	app := New(context.Background(), storage.NewMemory(), WithLogger(discard))
	assert.NoError(t, app.Close())
}

func TestAddTask_KeepsSelectionByDefault(t *testing.T) {
	ctx := context.Background()
	app := New(ctx, storage.NewMemory(), WithLogger(discard))

	app.Tags.Select(models.TagUrgent)
	first, ok := app.AddTask(ctx, "first")
	require.True(t, ok)
	second, ok := app.AddTask(ctx, "second")
	require.True(t, ok)

	assert.Equal(t, models.TagUrgent, first.Tag)
	assert.Equal(t, models.TagUrgent, second.Tag)
}

func TestAddTask_ResetPolicy(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Tags.ResetAfterAdd = true
	app := New(ctx, storage.NewMemory(), WithLogger(discard), WithConfig(cfg))

	app.Tags.Select(models.TagImportant)
	first, _ := app.AddTask(ctx, "first")
	second, _ := app.AddTask(ctx, "second")

	assert.Equal(t, models.TagImportant, first.Tag)
	assert.Equal(t, models.TagNone, second.Tag)
}

func TestAddTask_BlankDoesNotConsumeSelection(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Tags.ResetAfterAdd = true
	app := New(ctx, storage.NewMemory(), WithLogger(discard), WithConfig(cfg))

	app.Tags.Select(models.TagImportant)
	_, ok := app.AddTask(ctx, "   ")

	assert.False(t, ok)
	assert.Equal(t, models.TagImportant, app.Tags.Selected())
}

func TestOpen_SQLiteSessionPersists(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "session.db")

	first, err := Open(ctx, WithConfig(cfg), WithLogger(discard), WithSessionID("test-session"))
	require.NoError(t, err)
	_, ok := first.AddTask(ctx, "survives reopen")
	require.True(t, ok)
	require.NoError(t, first.Close())

	second, err := Open(ctx, WithConfig(cfg), WithLogger(discard), WithSessionID("test-session"))
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	require.Equal(t, 1, second.Store.Len())
	assert.Equal(t, "survives reopen", second.Store.Tasks()[0].Text)
	assert.Equal(t, "test-session", second.SessionID())
}

func TestOpen_Ephemeral(t *testing.T) {
	app, err := Open(context.Background(), WithEphemeral(true), WithLogger(discard))
	require.NoError(t, err)
	assert.Equal(t, "memory", app.SessionID())
}

func TestOpen_InvalidTTL(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.SessionTTL = "never"
	_, err := Open(context.Background(), WithConfig(cfg), WithLogger(discard))
	assert.Error(t, err)
}

func TestResetSession(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	app := New(ctx, st, WithLogger(discard))
	app.AddTask(ctx, "gone soon")

	require.NoError(t, app.ResetSession(ctx))

	assert.Equal(t, 0, app.Store.Len())
	_, ok, err := st.GetItem(ctx, models.TodosKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/tagdo/internal/config"
	"github.com/thenoetrevino/tagdo/internal/models"
	"github.com/thenoetrevino/tagdo/internal/storage"
	"github.com/thenoetrevino/tagdo/internal/store"
	"github.com/thenoetrevino/tagdo/internal/tags"
)

// App holds the task store, the tag selector and their storage.
// This is the main application container shared by the CLI and the TUI.
type App struct {
	Config *config.Config
	Store  *store.Store
	Tags   *tags.Cycler

	storage storage.Storage
	logger  *slog.Logger
	now     func() time.Time
}

func resolve(opts []Option) appConfig {
	c := appConfig{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c
}

// New creates an App over an already opened storage and rehydrates the store
func New(ctx context.Context, st storage.Storage, opts ...Option) *App {
	c := resolve(opts)
	return build(ctx, st, c)
}

func build(ctx context.Context, st storage.Storage, c appConfig) *App {
	policy := tags.KeepSelection
	if c.cfg.Tags.ResetAfterAdd {
		policy = tags.ResetSelection
	}

	return &App{
		Config:  c.cfg,
		Store:   store.New(ctx, st, store.WithLogger(c.logger), store.WithClock(c.now)),
		Tags:    tags.NewCycler(policy),
		storage: st,
		logger:  c.logger,
		now:     c.now,
	}
}

// Open resolves the session, opens session storage as configured, and
// builds the App on top of it.
func Open(ctx context.Context, opts ...Option) (*App, error) {
	c := resolve(opts)

	if c.ephemeral {
		return build(ctx, storage.NewMemory(), c), nil
	}

	ttl, err := c.cfg.Storage.SessionTTLDuration()
	if err != nil {
		return nil, err
	}

	sessionID := storage.ResolveSessionID(c.sessionID)
	st, err := storage.OpenSQLite(ctx, storage.SQLiteOptions{
		Path:       c.cfg.Storage.Path,
		SessionID:  sessionID,
		SessionTTL: ttl,
		Now:        c.now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}

	c.logger.Debug("Opened session storage", "session", sessionID)
	return build(ctx, st, c), nil
}

// AddTask adds a task with the currently selected tag, then applies the
// selector policy. Blank text is rejected the same way Store.Add rejects it.
func (a *App) AddTask(ctx context.Context, text string) (models.Task, bool) {
	task, ok := a.Store.Add(ctx, text, a.Tags.Selected())
	if ok {
		a.Tags.AfterAdd()
	}
	return task, ok
}

// SessionID returns the session the App's storage is scoped to
func (a *App) SessionID() string {
	return a.storage.SessionID()
}

// ResetSession removes every item of the current session and starts over
// with an empty list.
func (a *App) ResetSession(ctx context.Context) error {
	if err := a.storage.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	a.Store = store.New(ctx, a.storage, store.WithLogger(a.logger), store.WithClock(a.now))
	return nil
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases the session storage
func (a *App) Close() error {
	return a.storage.Close()
}

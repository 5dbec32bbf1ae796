package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/tagdo/internal/config"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	cfg       *config.Config
	logger    *slog.Logger
	now       func() time.Time
	sessionID string
	ephemeral bool
}

// WithConfig sets the loaded configuration
func WithConfig(cfg *config.Config) Option {
	return func(c *appConfig) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(c *appConfig) {
		c.logger = logger
	}
}

// WithClock overrides the clock used for task ids and session activity
func WithClock(now func() time.Time) Option {
	return func(c *appConfig) {
		c.now = now
	}
}

// WithSessionID attaches to an explicit session instead of resolving one
func WithSessionID(id string) Option {
	return func(c *appConfig) {
		c.sessionID = id
	}
}

// WithEphemeral keeps the session in memory only
func WithEphemeral(ephemeral bool) Option {
	return func(c *appConfig) {
		c.ephemeral = ephemeral
	}
}

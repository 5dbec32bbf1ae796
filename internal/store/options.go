package store

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a Store
type Option func(*config)

// config holds the configuration for Store initialization
type config struct {
	logger *slog.Logger
	now    func() time.Time
	key    string
}

// WithLogger sets the logger used for swallowed persistence errors
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithClock overrides the clock used to assign task identifiers
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		cfg.now = now
	}
}

// WithKey overrides the storage key the list is persisted under
func WithKey(key string) Option {
	return func(cfg *config) {
		cfg.key = key
	}
}

// Package storage provides session-scoped key-value persistence, the terminal
// counterpart of a browser's sessionStorage.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by operations on a closed storage
var ErrClosed = errors.New("storage is closed")

// Storage is a string key-value store scoped to a single session.
// Implementations are not required to be safe for concurrent use.
type Storage interface {
	// GetItem returns the value under key. ok is false when the key is absent.
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)

	// SetItem writes value under key, replacing any prior value
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Clear removes every key of the session
	Clear(ctx context.Context) error

	// SessionID identifies the session the storage is scoped to
	SessionID() string

	// Close releases underlying resources
	Close() error
}

// Compile-time verification that both backends implement Storage
var (
	_ Storage = (*Memory)(nil)
	_ Storage = (*SQLite)(nil)
)

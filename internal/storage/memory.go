package storage

import "context"

// Memory is a map-backed Storage. It is used by tests and --ephemeral runs.
type Memory struct {
	sessionID string
	items     map[string]string
	closed    bool
}

// NewMemory creates an empty in-memory storage
func NewMemory() *Memory {
	return &Memory{
		sessionID: "memory",
		items:     make(map[string]string),
	}
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	if m.closed {
		return ErrClosed
	}
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(_ context.Context, key string) error {
	if m.closed {
		return ErrClosed
	}
	delete(m.items, key)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	if m.closed {
		return ErrClosed
	}
	m.items = make(map[string]string)
	return nil
}

func (m *Memory) SessionID() string {
	return m.sessionID
}

func (m *Memory) Close() error {
	m.closed = true
	return nil
}

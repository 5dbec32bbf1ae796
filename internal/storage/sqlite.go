package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultSessionTTL is how long an idle session survives before it is pruned
const DefaultSessionTTL = 12 * time.Hour

// SQLiteOptions configures OpenSQLite
type SQLiteOptions struct {
	// Path of the database file. ":memory:" opens a private in-memory database.
	Path string
	// SessionID scopes every key. Required.
	SessionID string
	// SessionTTL is the idle time after which other sessions are pruned.
	// Zero means DefaultSessionTTL; negative disables pruning.
	SessionTTL time.Duration
	// Now overrides the clock, for tests
	Now func() time.Time
}

// SQLite stores session items in a SQLite database shared by all sessions
type SQLite struct {
	db        *sql.DB
	sessionID string
	now       func() time.Time
}

// DefaultPath returns ~/.tagdo/session.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".tagdo", "session.db"), nil
}

// OpenSQLite opens (creating if needed) the session database, runs
// migrations, and prunes sessions that have been idle longer than the TTL.
func OpenSQLite(ctx context.Context, opts SQLiteOptions) (*SQLite, error) {
	if opts.SessionID == "" {
		return nil, errors.New("session id is required")
	}
	if opts.Path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		opts.Path = p
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection: SQLite has one writer, and ":memory:" databases are
	// per-connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			slog.Error("Failed to apply pragma", "pragma", p, "error", err)
			closeQuietly(db)
			return nil, fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := &SQLite{
		db:        db,
		sessionID: opts.SessionID,
		now:       opts.Now,
	}

	ttl := opts.SessionTTL
	if ttl == 0 {
		ttl = DefaultSessionTTL
	}
	if ttl > 0 {
		n, err := s.PruneExpired(ctx, ttl)
		if err != nil {
			// Stale sessions are harmless; keep going.
			slog.Warn("Failed to prune expired sessions", "error", err)
		} else if n > 0 {
			slog.Debug("Pruned expired session items", "rows", n)
		}
	}

	if err := s.touch(ctx); err != nil {
		slog.Warn("Failed to refresh session activity", "session", s.sessionID, "error", err)
	}

	return s, nil
}

func closeQuietly(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}

func (s *SQLite) nowMillis() int64 {
	return s.now().UnixMilli()
}

func (s *SQLite) GetItem(ctx context.Context, key string) (string, bool, error) {
	if s.db == nil {
		return "", false, ErrClosed
	}
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM session_items WHERE session_id = ? AND key = ?",
		s.sessionID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLite) SetItem(ctx context.Context, key, value string) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_items (session_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		s.sessionID, key, value, s.nowMillis())
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) RemoveItem(ctx context.Context, key string) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM session_items WHERE session_id = ? AND key = ?",
		s.sessionID, key)
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if s.db == nil {
		return ErrClosed
	}
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM session_items WHERE session_id = ?", s.sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLite) SessionID() string {
	return s.sessionID
}

// PruneExpired deletes the items of every other session whose most recent
// write is older than ttl. It returns the number of rows removed.
func (s *SQLite) PruneExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	cutoff := s.now().Add(-ttl).UnixMilli()
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM session_items
		WHERE session_id != ?
		AND session_id IN (
			SELECT session_id FROM session_items
			GROUP BY session_id
			HAVING MAX(updated_at) < ?
		)`, s.sessionID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned rows: %w", err)
	}
	return n, nil
}

// Sessions returns the IDs of all sessions that currently hold items
func (s *SQLite) Sessions(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT session_id FROM session_items ORDER BY session_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// touch marks the current session as active so a long-lived but idle session
// is not pruned by another process right after it was opened.
func (s *SQLite) touch(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE session_items SET updated_at = ? WHERE session_id = ?",
		s.nowMillis(), s.sessionID)
	return err
}

func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Package store owns the ordered task list and mirrors it to session storage
// after every change.
package store

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/tagdo/internal/models"
	"github.com/thenoetrevino/tagdo/internal/storage"
	"github.com/thenoetrevino/tagdo/internal/tags"
)

// Store is the single owner of the task list. Every mutating method writes
// the whole list back to storage before returning. Mutators that find nothing
// to change return false and leave storage untouched.
//
// A Store is not safe for concurrent use.
type Store struct {
	storage storage.Storage
	tasks   []models.Task
	logger  *slog.Logger
	now     func() time.Time
	key     string
}

// New creates a store and rehydrates it from storage. Absent, unreadable or
// malformed snapshots never fail construction: the store starts empty, and a
// malformed snapshot is overwritten with the empty list.
func New(ctx context.Context, st storage.Storage, opts ...Option) *Store {
	cfg := config{
		logger: slog.Default(),
		now:    time.Now,
		key:    models.TodosKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Store{
		storage: st,
		tasks:   []models.Task{},
		logger:  cfg.logger,
		now:     cfg.now,
		key:     cfg.key,
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, ok, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		s.logger.Warn("Failed to read task snapshot, starting empty", "key", s.key, "error", err)
		return
	}
	if !ok {
		return
	}

	tasks, err := DecodeSnapshot(raw)
	if err != nil {
		s.logger.Warn("Discarding unreadable task snapshot", "key", s.key, "error", err)
		s.persist(ctx)
		return
	}
	if len(tasks) > 0 {
		s.tasks = tasks
	}
}

// persist writes the whole list under the store key. Failures are logged and
// otherwise ignored.
func (s *Store) persist(ctx context.Context) {
	raw, err := EncodeSnapshot(s.tasks)
	if err != nil {
		s.logger.Error("Failed to encode task snapshot", "error", err)
		return
	}
	if err := s.storage.SetItem(ctx, s.key, raw); err != nil {
		level := slog.LevelError
		if errors.Is(err, context.Canceled) {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "Failed to persist task snapshot", "key", s.key, "error", err)
	}
}

// commit replaces the list and persists it
func (s *Store) commit(ctx context.Context, next []models.Task) {
	s.tasks = next
	s.persist(ctx)
}

// nextID returns the creation timestamp in milliseconds, bumped past the
// largest existing id so identifiers stay unique within the list. When that
// would leave [0, MaxID], the lowest unused id is taken instead.
func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if id < 0 {
		id = 0
	}
	for _, t := range s.tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	if id >= 0 && id <= MaxID {
		return id
	}

	used := make(map[int64]struct{}, len(s.tasks))
	for _, t := range s.tasks {
		used[t.ID] = struct{}{}
	}
	for id = 0; ; id++ {
		if _, taken := used[id]; !taken {
			return id
		}
	}
}

// Add appends a new pending task. Text that is empty after trimming is
// rejected and ok is false. Invalid UTF-8 is replaced with U+FFFD so the
// stored text matches what a reload returns. Empty or unknown tags become
// the default tag.
func (s *Store) Add(ctx context.Context, text, tag string) (task models.Task, ok bool) {
	if strings.TrimSpace(text) == "" {
		return models.Task{}, false
	}

	task = models.Task{
		ID:        s.nextID(),
		Text:      strings.ToValidUTF8(text, "\uFFFD"),
		Completed: false,
		Tag:       tags.Normalize(tag),
	}

	next := make([]models.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, task)
	s.commit(ctx, next)

	return task, true
}

// update applies fn to the task with the given id in a copy of the list
func (s *Store) update(ctx context.Context, id int64, fn func(*models.Task)) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	next := s.Tasks()
	fn(&next[i])
	s.commit(ctx, next)
	return true
}

// ToggleComplete flips the completed flag of the task with the given id
func (s *Store) ToggleComplete(ctx context.Context, id int64) bool {
	return s.update(ctx, id, func(t *models.Task) {
		t.Completed = !t.Completed
	})
}

// CycleTag advances the task's tag to the next label, wrapping around
func (s *Store) CycleTag(ctx context.Context, id int64) bool {
	return s.update(ctx, id, func(t *models.Task) {
		t.Tag = tags.Next(t.Tag)
	})
}

// Delete removes the task with the given id
func (s *Store) Delete(ctx context.Context, id int64) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	next := make([]models.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	s.commit(ctx, next)
	return true
}

// ClearCompleted removes every completed task and returns how many were
// removed. The relative order of the remaining tasks is kept.
func (s *Store) ClearCompleted(ctx context.Context) int {
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}
	removed := len(s.tasks) - len(next)
	if removed > 0 {
		s.commit(ctx, next)
	}
	return removed
}

// Reorder moves the task at position from to position to, shifting the tasks
// in between. Out-of-range positions and from == to are no-ops.
func (s *Store) Reorder(ctx context.Context, from, to int) bool {
	n := len(s.tasks)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	s.commit(ctx, Move(s.tasks, from, to))
	return true
}

// Move returns a copy of tasks with the element at from moved to to.
// Both positions must be in range.
func Move(tasks []models.Task, from, to int) []models.Task {
	next := make([]models.Task, 0, len(tasks))
	moved := tasks[from]
	for i, t := range tasks {
		if i == from {
			continue
		}
		next = append(next, t)
	}
	next = append(next, models.Task{})
	copy(next[to+1:], next[to:])
	next[to] = moved
	return next
}

// Tasks returns a copy of the current list in display order
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id
func (s *Store) Get(id int64) (models.Task, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i], true
}

// IndexOf returns the display position of the task with the given id, or -1
func (s *Store) IndexOf(id int64) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of tasks
func (s *Store) Len() int {
	return len(s.tasks)
}

// Stats summarizes the list
func (s *Store) Stats() models.TaskStats {
	return models.CountTasks(s.tasks)
}

// Storage returns the backing session storage
func (s *Store) Storage() storage.Storage {
	return s.storage
}

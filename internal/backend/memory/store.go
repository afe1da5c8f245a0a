// Package memory implements the service.Store interface with an in-process,
// mutex-guarded task collection. It is the sole owner of the task sequence;
// reads hand out copies so callers can never mutate store state directly.
package memory

import (
	"context"
	"sync"

	"ttrack/internal/service"
)

// Store is an in-memory task store safe for concurrent use.
// The zero value is not usable; construct with New.
type Store struct {
	mu    sync.Mutex
	tasks []service.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Add implements service.Store. It never fails.
func (s *Store) Add(ctx context.Context, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, service.Task{Title: title})
	return nil
}

// List implements service.Store. It returns a copy of the task sequence in
// insertion order; an empty store yields an empty (non-nil) slice.
func (s *Store) List(ctx context.Context) ([]service.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]service.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot, nil
}

// Complete implements service.Store. Every task whose title equals title is
// marked completed; the transition is one-way and idempotent. No match is a
// no-op, not an error.
func (s *Store) Complete(ctx context.Context, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].Title == title {
			s.tasks[i].Completed = true
		}
	}
	return nil
}

// Delete implements service.Store. Every task whose title equals title is
// removed; the rest keep their relative order. No match is a no-op.
func (s *Store) Delete(ctx context.Context, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Title != title {
			kept = append(kept, t)
		}
	}
	// Zero the tail so removed tasks don't linger in the backing array.
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = service.Task{}
	}
	s.tasks = kept
	return nil
}

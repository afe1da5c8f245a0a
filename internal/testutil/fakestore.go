// Package testutil provides testing utilities.
package testutil

import (
	"context"

	"ttrack/internal/service"
)

// FakeStore is an in-memory service.Store for command tests, with error
// injection so error-path handling can be exercised. Unlike the production
// memory backend it is not safe for concurrent use; command tests are
// single-goroutine.
type FakeStore struct {
	tasks []service.Task

	// Error injection for testing
	AddErr      error
	ListErr     error
	CompleteErr error
	DeleteErr   error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed appends a task directly, bypassing error injection.
func (f *FakeStore) Seed(title string, completed bool) {
	f.tasks = append(f.tasks, service.Task{Title: title, Completed: completed})
}

// Tasks returns the current task slice for assertions.
func (f *FakeStore) Tasks() []service.Task {
	return f.tasks
}

// Add implements service.Store.
func (f *FakeStore) Add(ctx context.Context, title string) error {
	if f.AddErr != nil {
		return f.AddErr
	}
	f.tasks = append(f.tasks, service.Task{Title: title})
	return nil
}

// List implements service.Store.
func (f *FakeStore) List(ctx context.Context) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	snapshot := make([]service.Task, len(f.tasks))
	copy(snapshot, f.tasks)
	return snapshot, nil
}

// Complete implements service.Store.
func (f *FakeStore) Complete(ctx context.Context, title string) error {
	if f.CompleteErr != nil {
		return f.CompleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].Title == title {
			f.tasks[i].Completed = true
		}
	}
	return nil
}

// Delete implements service.Store.
func (f *FakeStore) Delete(ctx context.Context, title string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	kept := f.tasks[:0]
	for _, t := range f.tasks {
		if t.Title != title {
			kept = append(kept, t)
		}
	}
	f.tasks = kept
	return nil
}

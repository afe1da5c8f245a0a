// Package service defines the backend-agnostic contract for task operations.
package service

import "context"

// Store defines the interface for task storage backends.
// Commands never touch a backend's internals directly.
//
// Title-keyed operations (Complete, Delete) match the title exactly and
// case-sensitively, and apply to every matching task. A title that matches
// nothing is a valid no-op, not an error.
type Store interface {
	// Add appends a new incomplete task with the given title.
	// Any title is accepted, including the empty string.
	Add(ctx context.Context, title string) error

	// List returns a snapshot of all tasks in insertion order.
	// Mutating the returned slice must not affect store state.
	List(ctx context.Context) ([]Task, error)

	// Complete marks every task whose title equals title as completed.
	Complete(ctx context.Context, title string) error

	// Delete removes every task whose title equals title.
	Delete(ctx context.Context, title string) error
}

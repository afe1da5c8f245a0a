// Package service defines the backend-agnostic contract for task operations.
package service

// Task represents a single tracked item. Titles are not unique: two tasks may
// carry the same title, and title-keyed operations apply to every match.
type Task struct {
	Title     string
	Completed bool
}

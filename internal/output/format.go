// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ttrack/internal/service"
)

const (
	// MarkDone is printed for completed tasks.
	MarkDone = "✔"

	// MarkOpen is printed for open tasks.
	MarkOpen = "✗"
)

// FormatTask writes one task line.
// Format: "[✔] <title>" for completed tasks, "[✗] <title>" otherwise.
func FormatTask(w io.Writer, task service.Task) {
	mark := MarkOpen
	if task.Completed {
		mark = MarkDone
	}
	fmt.Fprintf(w, "[%s] %s\n", mark, normalizeTitle(task.Title))
}

// FormatTasks writes every task on its own line, in the given order.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for _, task := range tasks {
		FormatTask(w, task)
	}
}

// normalizeTitle normalizes a task title for display.
// Stored titles are untouched; this only affects what is printed.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// Package logging sets up the zerolog logger used for diagnostics and the
// background status loop. User-facing command output goes to plain writers,
// not through here.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds a console logger writing to w. Debug enables debug-level
// records; otherwise the level is info.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.DateTime

	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}

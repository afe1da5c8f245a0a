// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"ttrack/internal/config"
	"ttrack/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task store.
	// Commands like help, version and exit return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided. store is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int
}

// Prompter is implemented by commands that take a task title and want the
// interactive shell to ask for one when invoked bare. The prompted line is
// passed verbatim as the command's single argument.
type Prompter interface {
	Prompt() string
}

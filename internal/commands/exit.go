package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd implements the exit command. The interactive shell recognizes it
// and terminates its loop after the command runs; in one-shot mode it is a
// no-op since the process is about to exit anyway.
type ExitCmd struct{}

func (c *ExitCmd) Name() string      { return "exit" }
func (c *ExitCmd) Aliases() []string { return []string{"quit"} }
func (c *ExitCmd) Synopsis() string  { return "Leave the interactive shell" }
func (c *ExitCmd) Usage() string     { return "exit" }
func (c *ExitCmd) NeedsStore() bool  { return false }

func (c *ExitCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "bye")
	}
	return exitcode.Success
}

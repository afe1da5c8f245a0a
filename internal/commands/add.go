package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "add <title...>" }
func (c *AddCmd) NeedsStore() bool  { return true }
func (c *AddCmd) Prompt() string    { return "title" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	// The joined args form the title verbatim; empty and duplicate titles
	// are accepted.
	title := strings.Join(args, " ")

	if err := store.Add(ctx, title); err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

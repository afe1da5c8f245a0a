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
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deletion applies to every task whose
// title matches exactly, since titles are not unique.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete", "remove"} }
func (c *RmCmd) Synopsis() string  { return "Delete every task with the given title" }
func (c *RmCmd) Usage() string     { return "rm <title...>" }
func (c *RmCmd) NeedsStore() bool  { return true }
func (c *RmCmd) Prompt() string    { return "title" }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	title := strings.Join(args, " ")

	matches, code := countMatches(ctx, store, title, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := store.Delete(ctx, title); err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return exitcode.StoreError
	}

	if !cfg.Quiet {
		if matches == 0 {
			fmt.Fprintf(out, "no matching task: %s\n", title)
		} else {
			fmt.Fprintln(out, "ok")
		}
	}
	return exitcode.Success
}

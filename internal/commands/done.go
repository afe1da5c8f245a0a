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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Completion applies to every task
// whose title matches exactly, since titles are not unique.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark every task with the given title completed" }
func (c *DoneCmd) Usage() string     { return "done <title...>" }
func (c *DoneCmd) NeedsStore() bool  { return true }
func (c *DoneCmd) Prompt() string    { return "title" }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}
	title := strings.Join(args, " ")

	matches, code := countMatches(ctx, store, title, errOut)
	if code != exitcode.Success {
		return code
	}

	if err := store.Complete(ctx, title); err != nil {
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

// countMatches reports how many stored tasks carry exactly the given title.
// Used only for the informational notice; the mutation itself is still a
// valid no-op when nothing matches.
func countMatches(ctx context.Context, store service.Store, title string, errOut io.Writer) (int, int) {
	tasks, err := store.List(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: store error: %v\n", err)
		return 0, exitcode.StoreError
	}
	n := 0
	for _, t := range tasks {
		if t.Title == title {
			n++
		}
	}
	return n, exitcode.Success
}

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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command. The command table is built from the
// registry so help stays in sync with what is actually registered.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store service.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintln(out, "  ttrack                 Start the interactive shell")
	fmt.Fprintln(out, "  ttrack <command> ...   Run one command and exit")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, cmd := range DefaultRegistry.All() {
		name := cmd.Usage()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(out, "  %-28s %s\n", name, cmd.Synopsis())
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, commonFlagsHelp)
	return exitcode.Success
}

const commonFlagsHelp = `Common flags:
  --quiet           Suppress informational output
  --debug           Print debug logs to stderr
  --interval <dur>  Status report interval (default 10s)

Environment:
  TTRACK_QUIET, TTRACK_DEBUG, TTRACK_STATUS_INTERVAL

Tasks live in memory only and are gone when the process exits.
`

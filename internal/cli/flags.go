package cli

import (
	"flag"
	"fmt"
	"io"

	"ttrack/internal/config"
)

// ParseShellFlags parses the common flags accepted when ttrack starts the
// interactive shell (no command word), overriding the env-derived config in
// place. --interval takes precedence over TTRACK_STATUS_INTERVAL. Positional
// arguments are rejected; the shell takes its commands from stdin.
func ParseShellFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("ttrack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	registerCommonFlags(fs, cfg)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s", describeFlagError(err))
	}
	if rest := fs.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}
	return nil
}

package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttrack/internal/commands"
	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
)

// StoreFactory creates a Store for commands that need one.
// Used to inject the backend during dispatch.
type StoreFactory func(ctx context.Context, cfg *config.Config) (service.Store, error)

// Dispatcher handles one-shot command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list (main starts the interactive shell before it gets here,
	// so this path only serves tests and embedding).
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]

	// Flags require a command in front of them.
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	registerCommonFlags(fs, cfg)
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", describeFlagError(err))
		return exitcode.UserError
	}

	// A positional starting with - means a flag escaped parsing.
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	var store service.Store
	if cmd.NeedsStore() {
		store, err = d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: store error: %s\n", err)
			return exitcode.StoreError
		}
	}

	return cmd.Run(ctx, cfg, store, positional, out, errOut)
}

// registerCommonFlags registers the flags every invocation accepts. They
// default to the env-derived config and override it when given.
func registerCommonFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "")
	fs.DurationVar(&cfg.StatusInterval, "interval", cfg.StatusInterval, "")
}

// describeFlagError rewrites flag package parse errors into the CLI's own
// wording. Messages it doesn't recognize pass through unchanged.
func describeFlagError(err error) string {
	errStr := err.Error()

	// "flag needs an argument: -interval" -> keep the flag name.
	if strings.Contains(errStr, "flag needs an argument") {
		if _, name, ok := strings.Cut(errStr, ": "); ok {
			return "flag needs an argument: " + name
		}
		return errStr
	}

	if name, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
		return "unknown flag: " + name
	}

	return errStr
}

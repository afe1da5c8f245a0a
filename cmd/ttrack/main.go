// Package main is the entry point for the ttrack CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"ttrack/internal/backend/memory"
	"ttrack/internal/cli"
	"ttrack/internal/commands"
	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/logging"
	"ttrack/internal/reporter"
	"ttrack/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	args := os.Args[1:]

	// With a command word, run it one-shot and exit.
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		factory := func(ctx context.Context, cfg *config.Config) (service.Store, error) {
			return memory.New(), nil
		}
		dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
		os.Exit(dispatcher.Run(ctx, args, os.Stdout, os.Stderr))
	}

	// No command: interactive shell with the background status reporter
	// running for the session's lifetime. Leading common flags apply to
	// the whole session.
	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitcode.UserError)
	}
	if err := cli.ParseShellFlags(cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitcode.UserError)
	}

	logger := logging.New(os.Stderr, cfg.Debug)

	rep := reporter.New(cfg.StatusInterval, logger)
	rep.Start()

	store := memory.New()
	shell := cli.NewShell(commands.DefaultRegistry, cfg, store)
	code := shell.Run(ctx, os.Stdin, os.Stdout, os.Stderr)

	rep.Stop()
	os.Exit(code)
}

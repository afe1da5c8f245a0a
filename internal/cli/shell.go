package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"ttrack/internal/commands"
	"ttrack/internal/config"
	"ttrack/internal/exitcode"
	"ttrack/internal/service"
)

// Prompt is printed before each shell command line.
const Prompt = "ttrack> "

// maxLineBytes caps a single input line. Lines beyond it end the session
// with a read error instead of a silent EOF.
const maxLineBytes = 1 << 20

// Shell is the interactive command loop. All commands in one session share
// a single store, so tasks added on one line are visible on the next.
//
// Lines are split on whitespace: the first field is the command name, the
// rest are its arguments. Commands implementing commands.Prompter that are
// typed bare get asked for a title on the next line, which is passed
// verbatim (empty included). An unknown command prints an error and keeps
// the loop running; exit, EOF or context cancellation ends it.
type Shell struct {
	registry *commands.Registry
	cfg      *config.Config
	store    service.Store
}

// NewShell creates a shell over the given registry, config and store.
func NewShell(registry *commands.Registry, cfg *config.Config, store service.Store) *Shell {
	return &Shell{
		registry: registry,
		cfg:      cfg,
		store:    store,
	}
}

// Run reads commands from in until exit, EOF or context cancellation.
// Returns the exit code of the session: 0 on normal exit regardless of
// individual command failures, 1 when reading input itself fails.
func (s *Shell) Run(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)

	// Reading happens on its own goroutine so a cancelled context can end
	// the session while Scan is blocked on input (e.g. a signal arriving
	// mid-prompt). scanner is only touched again after lines is closed.
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	readLine := func() (string, bool) {
		select {
		case <-ctx.Done():
			return "", false
		case line, ok := <-lines:
			return line, ok
		}
	}

	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}

		fmt.Fprint(out, Prompt)
		line, ok := readLine()
		if !ok {
			return s.finish(ctx, scanner, out, errOut)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, found := s.registry.Find(fields[0])
		if !found {
			fmt.Fprintf(errOut, "error: unknown command: %s\n", fields[0])
			continue
		}

		args := fields[1:]
		if len(args) == 0 {
			if p, isPrompter := cmd.(commands.Prompter); isPrompter {
				fmt.Fprintf(out, "%s: ", p.Prompt())
				title, ok := readLine()
				if !ok {
					return s.finish(ctx, scanner, out, errOut)
				}
				// The prompted line is the title verbatim, spaces and all.
				args = []string{title}
			}
		}

		var store service.Store
		if cmd.NeedsStore() {
			store = s.store
		}
		cmd.Run(ctx, s.cfg, store, args, out, errOut)

		if _, isExit := cmd.(*commands.ExitCmd); isExit {
			return exitcode.Success
		}
	}
}

// finish ends a session whose input stopped. Cancellation is a clean stop;
// otherwise a scanner error (including an over-long line) is surfaced
// rather than treated as EOF.
func (s *Shell) finish(ctx context.Context, scanner *bufio.Scanner, out, errOut io.Writer) int {
	fmt.Fprintln(out)
	if ctx.Err() != nil {
		return exitcode.Success
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: reading input: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}

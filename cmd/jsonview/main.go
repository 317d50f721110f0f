// Command jsonview is a terminal browser for JSON documents: point it at a
// file or pipe JSON into it, then navigate the resulting tree with the
// vim-like bindings internal/app wires up.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/jsonview/internal/app"
	"github.com/grovetools/jsonview/internal/config"
	"github.com/grovetools/jsonview/internal/errorsx"
	"github.com/grovetools/jsonview/internal/format"
	"github.com/grovetools/jsonview/internal/logging"
	"github.com/grovetools/jsonview/internal/term"
	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/value"
	"github.com/mattn/go-isatty"
)

func main() {
	os.Exit(run())
}

// run implements the invocation contract: zero or one positional argument
// (stdin vs. a named file), a startup failure reported to stderr with a
// non-zero exit, a clean quit exiting 0.
func run() int {
	root, err := loadInput(os.Args[1:])
	if err != nil {
		reportStartupError(err)
		return errorsx.ExitCode(err)
	}

	cfg, err2 := config.Load()
	if err2 != nil || cfg == nil {
		cfg = &config.Config{}
	}
	th := theme.Default.WithOverrides(cfg.Theme)
	format.TabWidth = cfg.TabWidthOr(format.TabWidth)

	dev, err := term.Open(cfg.MouseEnabled())
	if err != nil {
		reportStartupError(err)
		return errorsx.ExitCode(err)
	}

	a, appErr := app.New(dev, root, th)
	var runErr error
	if appErr == nil {
		runErr = a.Run()
	}

	// Restore the primary screen before writing anything to stderr — an
	// error printed while the alternate screen is still active would be
	// invisible once Close switches back.
	dev.Close()

	if appErr != nil {
		reportStartupError(appErr)
		return errorsx.ExitCode(appErr)
	}
	if runErr != nil {
		logging.For("main").WithError(runErr).Error("event loop exited with error")
		wrapped := errorsx.Wrap(runErr, errorsx.CodeInternal, "event loop")
		reportStartupError(wrapped)
		return errorsx.ExitCode(wrapped)
	}
	return 0
}

// loadInput reads and parses JSON from stdin (no args) or the named file
// (one arg). Any other argument count is a usage error.
func loadInput(args []string) (*value.V, error) {
	var data []byte
	var err error

	switch len(args) {
	case 0:
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errorsx.Wrap(err, errorsx.CodeOpenInput, "read standard input")
		}
	case 1:
		data, err = os.ReadFile(args[0])
		if err != nil {
			return nil, errorsx.Wrap(err, errorsx.CodeOpenInput, "open "+args[0])
		}
	default:
		return nil, errorsx.New(errorsx.CodeBadArgs, "usage: jsonview [file]")
	}

	root, err := value.Parse(data)
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.CodeParseInput, "parse JSON")
	}
	return root, nil
}

// reportStartupError writes the failure to stderr, bolding the prefix when
// stderr is itself a terminal.
func reportStartupError(err error) {
	prefix := "jsonview:"
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		prefix = "\x1b[1mjsonview:\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, prefix, err)
	printDebugBacktrace(err)
}

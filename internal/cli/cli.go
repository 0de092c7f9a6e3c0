package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/linecount/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// printUsage writes the help text and flag defaults to w.
func printUsage(w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprint(w, `
LineCount - counts lines of .cpp and .hpp files under one or more directories.

Usage:
  linecount [options] [DIR ...]

Arguments:
  DIR
    Zero or more directories to scan recursively. Each matching file is
    printed with its line count, followed by a per-directory summary.
    Defaults to the current directory when omitted.

Options:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("linecount", flag.ContinueOnError)
	// The flag package narrates parse failures on its own; keep it quiet
	// so each error surfaces exactly once, on the error stream, through
	// the returned ExitError.
	flagSet.SetOutput(io.Discard)
	flagSet.Usage = func() {}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printUsage(output, flagSet)
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	roots := flagSet.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}
	slog.Debug("Scan roots determined.", "roots", roots)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Roots:     roots,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

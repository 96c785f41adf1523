// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// Commands.
const (
	CommandScan  = "scan"
	CommandCheck = "check"
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

// Options is a parsed command line.
type Options struct {
	Command    string
	Path       string
	ConfigPath string
	Passphrase string
	// LogLevel and LogFormat override the config file when non-empty.
	LogLevel  string
	LogFormat string
}

const usage = `
xwgrid - crossword grid tools.

Usage:
  xwgrid scan  [options] IMAGE     locate a grid in a PNG, JPEG or GIF image
  xwgrid check [options] PUZZLE    report fill and solve status of a puzzle XML file

Options:
`

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns the Options, a boolean
// indicating if the program should exit cleanly (help was printed), or an
// *ExitError with code 2 for usage mistakes.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("xwgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	opts := &Options{}
	flagSet.StringVar(&opts.ConfigPath, "config", "", "Path to an HCL configuration file.")
	flagSet.StringVar(&opts.Passphrase, "passphrase", "", "Passphrase for an encrypted solution (check only).")
	flagSet.StringVar(&opts.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	flagSet.StringVar(&opts.LogFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	if len(args) == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	switch args[0] {
	case "-h", "-help", "--help", "help":
		flagSet.Usage()
		return nil, true, nil
	case CommandScan, CommandCheck:
		opts.Command = args[0]
	default:
		return nil, false, usageError("unknown command %q: want %q or %q", args[0], CommandScan, CommandCheck)
	}

	if err := flagSet.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if flagSet.NArg() != 1 {
		return nil, false, usageError("%s: expected exactly one file argument, got %d", opts.Command, flagSet.NArg())
	}
	opts.Path = flagSet.Arg(0)

	if opts.Command == CommandScan && opts.Passphrase != "" {
		return nil, false, usageError("scan: -passphrase applies to check only")
	}
	opts.LogFormat = strings.ToLower(opts.LogFormat)
	switch opts.LogFormat {
	case "", "text", "json":
	default:
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}
	opts.LogLevel = strings.ToLower(opts.LogLevel)
	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	return opts, false, nil
}

// SPDX-License-Identifier: MIT

// Command xwgrid locates crossword grids in images and checks puzzle
// files against their answer keys.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/crossgrid/config"
	"github.com/katalvlaran/crossgrid/ctxlog"
	"github.com/katalvlaran/crossgrid/internal/cli"
	"github.com/katalvlaran/crossgrid/progress"
	"github.com/katalvlaran/crossgrid/puzzle"
	"github.com/katalvlaran/crossgrid/scan"
	"github.com/katalvlaran/crossgrid/solution"
	"github.com/katalvlaran/crossgrid/xmldoc"
)

// main is the entrypoint for xwgrid.
func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	opts, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	logger := cfg.Logger(errW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Configuration loaded.", "config", opts.ConfigPath, "command", opts.Command)

	switch opts.Command {
	case cli.CommandScan:
		return runScan(ctx, outW, cfg, opts.Path)
	case cli.CommandCheck:
		return runCheck(ctx, outW, cfg, opts)
	}
	return &cli.ExitError{Code: 2, Message: "no command"}
}

func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if opts.LogLevel != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
			return nil, err
		}
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScan(ctx context.Context, outW io.Writer, cfg *config.Config, path string) error {
	logger := ctxlog.FromContext(ctx)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	logger.Debug("Image decoded.", "path", path, "format", format, "bounds", img.Bounds().String())

	res, err := scan.Scan(ctx, scan.FromImage(img), cfg.ScanParams(), progress.LogSink{Logger: logger})
	switch {
	case progress.IsCancelled(err):
		fmt.Fprintln(outW, "scan cancelled")
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintf(outW, "columns=%d rows=%d bounds=%s\n", res.Columns, res.Rows, res.Bounds)
	return nil
}

func runCheck(ctx context.Context, outW io.Writer, cfg *config.Config, opts *cli.Options) error {
	logger := ctxlog.FromContext(ctx)
	f, err := os.Open(opts.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	p, err := xmldoc.Read(f)
	if err != nil {
		return err
	}
	g, err := p.LoadGrid(cfg.GridOptions()...)
	if err != nil {
		return err
	}
	doc, err := puzzle.New(g)
	if err != nil {
		return err
	}

	var prompt solution.Prompt
	if opts.Passphrase != "" {
		prompt = solution.StaticPrompt(opts.Passphrase)
	}
	solErr := doc.LoadSolution(ctx, p.Solution, cfg.Fetcher(), prompt, progress.LogSink{Logger: logger})

	entries := g.Entries()
	fmt.Fprintf(outW, "grid: %dx%d %s symmetry=%s fields=%d\n", g.Cols(), g.Rows(), g.Separator(), g.Symmetry(), g.NumFields())
	fmt.Fprintf(outW, "filled: %d/%d complete=%t\n", entries.NumValues(), entries.NumCells(), g.IsComplete())
	if !g.IsConnected() {
		fmt.Fprintf(outW, "warning: grid has %d disconnected islands\n", len(g.Islands()))
	}

	switch {
	case p.Solution == nil:
		fmt.Fprintln(outW, "solution: none")
	case progress.IsCancelled(solErr):
		fmt.Fprintln(outW, "solution: locked (use -passphrase)")
	case solErr != nil:
		return fmt.Errorf("solution: %w", solErr)
	case doc.IsSolved():
		fmt.Fprintln(outW, "solution: solved")
	default:
		mask, err := doc.IncorrectCells()
		if err != nil {
			return err
		}
		wrong := 0
		for r, row := range mask {
			for c, bad := range row {
				if v, _ := entries.Value(r, c); bad && v > 0 {
					wrong++
				}
			}
		}
		fmt.Fprintf(outW, "solution: not solved, %d incorrect letters\n", wrong)
	}
	return nil
}

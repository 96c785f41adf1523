// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/remote"
	"github.com/katalvlaran/crossgrid/scan"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the engine configuration.
type Config struct {
	Entry  EntryConfig
	Scan   scan.Params
	Remote RemoteConfig
	Log    LogConfig
}

// EntryConfig controls which characters grids accept.
type EntryConfig struct {
	// AllowedCharacters restricts entries; empty allows any letter or digit.
	AllowedCharacters string
	// UndefinedMark stands for an empty cell in entry texts.
	UndefinedMark rune
}

// RemoteConfig limits solution downloads.
type RemoteConfig struct {
	Timeout  time.Duration
	MaxBytes int64
}

// LogConfig selects the CLI logger.
type LogConfig struct {
	Level  slog.Level
	Format string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Entry:  EntryConfig{UndefinedMark: grid.DefaultUndefinedMark},
		Scan:   scan.DefaultParams(),
		Remote: RemoteConfig{Timeout: remote.DefaultTimeout, MaxBytes: remote.DefaultMaxBytes},
		Log:    LogConfig{Level: slog.LevelInfo, Format: FormatText},
	}
}

// Validate checks every value.
func (c *Config) Validate() error {
	m := c.Entry.UndefinedMark
	if m <= 0 || unicode.IsLetter(m) || unicode.IsDigit(m) || unicode.IsSpace(m) {
		return fmt.Errorf("%w: entry.undefined_mark %q must not be a letter, digit or space", ErrInvalid, m)
	}
	if strings.ContainsRune(c.Entry.AllowedCharacters, m) {
		return fmt.Errorf("%w: entry.allowed_characters contains the undefined mark %q", ErrInvalid, m)
	}
	if err := c.Scan.Validate(); err != nil {
		return fmt.Errorf("%w: scan: %w", ErrInvalid, err)
	}
	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("%w: remote.timeout %s must be positive", ErrInvalid, c.Remote.Timeout)
	}
	if c.Remote.MaxBytes <= 0 {
		return fmt.Errorf("%w: remote.max_bytes %d must be positive", ErrInvalid, c.Remote.MaxBytes)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format %q must be %q or %q", ErrInvalid, c.Log.Format, FormatText, FormatJSON)
	}
	return nil
}

// GridOptions converts the entry rules for grid constructors.
func (c *Config) GridOptions() []grid.Option {
	return []grid.Option{
		grid.WithAllowedCharacters(c.Entry.AllowedCharacters),
		grid.WithUndefinedMark(c.Entry.UndefinedMark),
	}
}

// ScanParams returns the scanner parameters.
func (c *Config) ScanParams() scan.Params { return c.Scan }

// Fetcher returns an HTTP fetcher honouring the remote limits.
func (c *Config) Fetcher() *remote.HTTPFetcher {
	return remote.NewHTTPFetcher(c.Remote.Timeout, c.Remote.MaxBytes)
}

// Logger builds a structured logger writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.Log.Level}
	if c.Log.Format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func singleRune(attr, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s %q must be one character", ErrInvalid, attr, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

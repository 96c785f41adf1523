// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"errors"
	"log/slog"
)

// ErrCancelled reports that the user or caller aborted the operation.
// It is an outcome, not a failure.
var ErrCancelled = errors.New("progress: cancelled")

// Indeterminate is passed to SetProgress when no fraction is known.
const Indeterminate = -1.0

// Sink receives progress reports. Implementations must be cheap; they are
// called from inside scan and fetch loops.
type Sink interface {
	// SetLabel names the current activity; target is what it acts on
	// (a URL, an image size), possibly empty.
	SetLabel(text, target string)

	// SetProgress reports a fraction in [0,1], or Indeterminate.
	SetProgress(fraction float64)
}

// Nop discards every report.
type Nop struct{}

// SetLabel implements Sink.
func (Nop) SetLabel(string, string) {}

// SetProgress implements Sink.
func (Nop) SetProgress(float64) {}

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

// LogSink forwards reports to a structured logger at Debug level.
type LogSink struct {
	Logger *slog.Logger
}

// SetLabel implements Sink.
func (l LogSink) SetLabel(text, target string) {
	l.logger().Debug("Progress label.", "label", text, "target", target)
}

// SetProgress implements Sink.
func (l LogSink) SetProgress(fraction float64) {
	if fraction == Indeterminate {
		l.logger().Debug("Progress indeterminate.")
		return
	}
	l.logger().Debug("Progress.", "fraction", fraction)
}

func (l LogSink) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.Default()
	}
	return l.Logger
}

// Checkpoint returns ErrCancelled once ctx is done, nil otherwise.
// A nil ctx never cancels.
func Checkpoint(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ErrCancelled
	}
	return nil
}

// IsCancelled reports whether err is a cancellation outcome, either
// ErrCancelled or a context cancellation that escaped a checkpoint.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled) || errors.Is(err, context.Canceled)
}

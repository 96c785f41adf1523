// SPDX-License-Identifier: MIT

// Package progress carries the two collaborator contracts shared by the
// engine's long-running operations (image scan, remote solution fetch):
// a progress Sink and cooperative cancellation.
//
// Cancellation is driven by context.Context and checked at fixed
// checkpoints (between bitmap rows, between network reads). A cancelled
// operation returns ErrCancelled; callers must treat it as a distinct,
// non-failure outcome (IsCancelled), never as an error to display.
package progress

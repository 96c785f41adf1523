// SPDX-License-Identifier: MIT

package puzzle

import "errors"

var (
	// ErrNoSolution indicates an operation that needs an answer key on a document without one.
	ErrNoSolution = errors.New("puzzle: no solution")

	// ErrNilGrid indicates a document built without a grid.
	ErrNilGrid = errors.New("puzzle: nil grid")
)

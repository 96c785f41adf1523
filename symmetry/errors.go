// SPDX-License-Identifier: MIT

package symmetry

import "errors"

var (
	// ErrUnknownSymmetry indicates a symmetry key that is not part of the closed set.
	ErrUnknownSymmetry = errors.New("symmetry: unknown symmetry key")

	// ErrUnsupportedDimensions indicates a symmetry that cannot apply to the given
	// grid shape (quarter-turn rotation on a non-square grid).
	ErrUnsupportedDimensions = errors.New("symmetry: dimensions not supported")
)

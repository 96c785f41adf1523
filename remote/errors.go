// SPDX-License-Identifier: MIT

package remote

import "errors"

var (
	// ErrHashMismatch indicates a remote answer key whose hash differs from the local record.
	ErrHashMismatch = errors.New("remote: solution hash mismatch")

	// ErrNotReference indicates a solution element without a location.
	ErrNotReference = errors.New("remote: solution is not a reference")

	// ErrNoSolution indicates a fetched document without an embedded solution.
	ErrNoSolution = errors.New("remote: fetched document has no embedded solution")

	// ErrTooLarge indicates a response body over the fetcher's byte limit.
	ErrTooLarge = errors.New("remote: response too large")

	// ErrStatus indicates a non-2xx HTTP response.
	ErrStatus = errors.New("remote: unexpected HTTP status")
)

// SPDX-License-Identifier: MIT

package remote

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/katalvlaran/crossgrid/ctxlog"
	"github.com/katalvlaran/crossgrid/progress"
	"github.com/katalvlaran/crossgrid/solution"
	"github.com/katalvlaran/crossgrid/xmldoc"
)

// Fetch retrieves the document ref points at and returns its embedded
// answer key after checking it against ref's hash. Nothing is decrypted.
func Fetch(ctx context.Context, ref *xmldoc.Solution, f Fetcher, sink progress.Sink) (solution.Encoded, error) {
	if ref == nil || !ref.IsReference() {
		return solution.Encoded{}, ErrNotReference
	}
	want, err := ref.HashBytes()
	if err != nil {
		return solution.Encoded{}, err
	}

	data, err := f.Fetch(ctx, ref.Location, sink)
	if err != nil {
		return solution.Encoded{}, err
	}
	doc, err := xmldoc.Read(bytes.NewReader(data))
	if err != nil {
		return solution.Encoded{}, err
	}
	if doc.Solution == nil || doc.Solution.IsReference() {
		return solution.Encoded{}, fmt.Errorf("%w: %s", ErrNoSolution, ref.Location)
	}
	enc, err := doc.Solution.Encoded()
	if err != nil {
		return solution.Encoded{}, err
	}
	if subtle.ConstantTimeCompare(enc.Hash, want) != 1 {
		ctxlog.FromContext(ctx).Warn("Remote solution hash mismatch.", "url", ref.Location)
		return solution.Encoded{}, fmt.Errorf("%w: %s", ErrHashMismatch, ref.Location)
	}
	return enc, nil
}

// Resolve fetches, verifies and opens the answer key ref points at,
// prompting for a passphrase when the remote key is encrypted. lengths are
// the local grid's field lengths in canonical order.
func Resolve(ctx context.Context, ref *xmldoc.Solution, f Fetcher, prompt solution.Prompt, lengths []int, sink progress.Sink) ([]string, error) {
	enc, err := Fetch(ctx, ref, f, sink)
	if err != nil {
		return nil, err
	}
	return solution.DecodeWithPrompt(ctx, enc, prompt, lengths)
}

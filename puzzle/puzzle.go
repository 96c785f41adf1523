// SPDX-License-Identifier: MIT

package puzzle

import (
	"context"

	"github.com/katalvlaran/crossgrid/ctxlog"
	"github.com/katalvlaran/crossgrid/entries"
	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/progress"
	"github.com/katalvlaran/crossgrid/remote"
	"github.com/katalvlaran/crossgrid/solution"
	"github.com/katalvlaran/crossgrid/xmldoc"
)

// Document is a grid plus an optional answer key laid out on it.
type Document struct {
	grid     *grid.Grid
	solution *entries.Entries
}

// New wraps g without a solution.
func New(g *grid.Grid) (*Document, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Document{grid: g}, nil
}

// Grid returns the current grid.
func (d *Document) Grid() *grid.Grid { return d.grid }

// SetGrid replaces the grid, typically after a structural edit. The
// solution survives only when the new grid has the same answer cells.
func (d *Document) SetGrid(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if d.solution != nil && !g.BlankEntries().SameLayout(d.solution) {
		d.solution = nil
	}
	d.grid = g
	return nil
}

// SetSolution installs an answer key: one complete answer per field in
// canonical order. Validation follows Topology.SetEntries; on any failure
// the previous key is kept.
func (d *Document) SetSolution(texts []string) error {
	sol, err := d.grid.FillEntries(texts)
	if err != nil {
		return err
	}
	if !sol.IsComplete() {
		return solution.ErrIncompleteSolution
	}
	d.solution = sol
	return nil
}

// Solution returns a snapshot of the answer key, or nil.
func (d *Document) Solution() *entries.Entries {
	if d.solution == nil {
		return nil
	}
	return d.solution.Clone()
}

// SolutionTexts returns the answers in canonical order, or nil.
func (d *Document) SolutionTexts() []string {
	if d.solution == nil {
		return nil
	}
	return d.grid.TextsOf(d.solution)
}

// HasSolution reports whether an answer key is installed.
func (d *Document) HasSolution() bool { return d.solution != nil }

// ClearSolution drops the answer key. Entries are untouched.
func (d *Document) ClearSolution() { d.solution = nil }

// IncorrectCells flags ([row][col]) every in-field cell whose entry differs
// from the answer key, empty cells included.
func (d *Document) IncorrectCells() ([][]bool, error) {
	if d.solution == nil {
		return nil, ErrNoSolution
	}
	return d.grid.Entries().Compare(d.solution)
}

// ClearIncorrect empties every wrong letter and returns how many were
// cleared.
func (d *Document) ClearIncorrect() (int, error) {
	mask, err := d.IncorrectCells()
	if err != nil {
		return 0, err
	}
	e := d.grid.Entries()
	n, err := e.ClearMasked(mask)
	if err != nil {
		return 0, err
	}
	if err = d.grid.ReplaceEntries(e); err != nil {
		return 0, err
	}
	return n, nil
}

// IsSolved reports whether an answer key exists and the entries match it
// exactly.
func (d *Document) IsSolved() bool {
	return d.solution != nil && d.grid.Entries().Equal(d.solution)
}

// EncodeSolution seals the answer key; an empty passphrase selects plain
// mode.
func (d *Document) EncodeSolution(passphrase string, opts ...solution.Option) (solution.Encoded, error) {
	if d.solution == nil {
		return solution.Encoded{}, ErrNoSolution
	}
	return solution.EncodeEntries(d.grid.Topology, d.solution, passphrase, opts...)
}

// DecodeSolution opens enc, prompting for a passphrase when needed, and
// installs the result.
func (d *Document) DecodeSolution(ctx context.Context, enc solution.Encoded, prompt solution.Prompt) error {
	texts, err := solution.DecodeWithPrompt(ctx, enc, prompt, d.grid.FieldLengths())
	if err != nil {
		return err
	}
	return d.SetSolution(texts)
}

// ResolveRemoteSolution fetches the answer key ref points at, verifies its
// hash, opens it and installs the result.
func (d *Document) ResolveRemoteSolution(ctx context.Context, ref *xmldoc.Solution, f remote.Fetcher, prompt solution.Prompt, sink progress.Sink) error {
	texts, err := remote.Resolve(ctx, ref, f, prompt, d.grid.FieldLengths(), sink)
	if err != nil {
		return err
	}
	return d.SetSolution(texts)
}

// LoadSolution installs s, embedded or by reference. A nil s is a no-op.
func (d *Document) LoadSolution(ctx context.Context, s *xmldoc.Solution, f remote.Fetcher, prompt solution.Prompt, sink progress.Sink) error {
	if s == nil {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	if s.IsReference() {
		logger.Debug("Resolving solution by reference.", "url", s.Location)
		return d.ResolveRemoteSolution(ctx, s, f, prompt, sink)
	}
	enc, err := s.Encoded()
	if err != nil {
		return err
	}
	logger.Debug("Decoding embedded solution.", "encryption", enc.Encryption.Key())
	return d.DecodeSolution(ctx, enc, prompt)
}

// Open builds a document from its XML form: grid, entries and, when
// present, the answer key.
func Open(ctx context.Context, p *xmldoc.Puzzle, f remote.Fetcher, prompt solution.Prompt, sink progress.Sink, opts ...grid.Option) (*Document, error) {
	g, err := p.LoadGrid(opts...)
	if err != nil {
		return nil, err
	}
	d := &Document{grid: g}
	if err = d.LoadSolution(ctx, p.Solution, f, prompt, sink); err != nil {
		return nil, err
	}
	return d, nil
}

// Export renders the document, sealing the answer key under passphrase
// when there is one.
func (d *Document) Export(passphrase string, opts ...solution.Option) (*xmldoc.Puzzle, error) {
	p := xmldoc.FromGrid(d.grid)
	if d.solution == nil {
		return p, nil
	}
	enc, err := d.EncodeSolution(passphrase, opts...)
	if err != nil {
		return nil, err
	}
	p.Solution = xmldoc.NewSolution(enc)
	return p, nil
}

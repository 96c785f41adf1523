// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"fmt"
	"image"

	"github.com/katalvlaran/crossgrid/ctxlog"
	"github.com/katalvlaran/crossgrid/progress"
)

// Params tunes the scanner.
type Params struct {
	// BrightnessThreshold: pixels darker than this are ink. In (0,1].
	BrightnessThreshold float64
	// MinLineLength is the shortest run kept as a line candidate, in pixels.
	MinLineLength int
	// MinLineSeparation is the smallest gap between two distinct rules.
	MinLineSeparation int
	// EndpointTolerance is how far line ends may stray from the datum's.
	EndpointTolerance int
}

// DefaultParams suits screenshots of on-screen grids.
func DefaultParams() Params {
	return Params{
		BrightnessThreshold: 0.5,
		MinLineLength:       20,
		MinLineSeparation:   8,
		EndpointTolerance:   3,
	}
}

// Validate reports parameters the scanner cannot work with.
func (p Params) Validate() error {
	switch {
	case p.BrightnessThreshold <= 0 || p.BrightnessThreshold > 1:
		return fmt.Errorf("%w: brightness threshold %v not in (0,1]", ErrInvalidParams, p.BrightnessThreshold)
	case p.MinLineLength < 2:
		return fmt.Errorf("%w: min line length %d < 2", ErrInvalidParams, p.MinLineLength)
	case p.MinLineSeparation < 2:
		return fmt.Errorf("%w: min line separation %d < 2", ErrInvalidParams, p.MinLineSeparation)
	case p.EndpointTolerance < 0:
		return fmt.Errorf("%w: endpoint tolerance %d < 0", ErrInvalidParams, p.EndpointTolerance)
	}
	return nil
}

// Line is a dark run. For horizontal lines Pos is y and [Start,End) spans
// x; for vertical lines Pos is x and [Start,End) spans y.
type Line struct {
	Pos, Start, End int
}

// Result locates a grid.
type Result struct {
	// Bounds encloses the outer rules; Max is exclusive.
	Bounds image.Rectangle
	// Columns and Rows count cells: vertical rules − 1, horizontal rules − 1.
	Columns, Rows int
	// ColumnRules and RowRules are the centres of the vertical and
	// horizontal rules.
	ColumnRules, RowRules []int
}

// rule is a combined line: adjacent runs at positions [lo,hi] spanning
// [start,end).
type rule struct {
	lo, hi     int
	start, end int
}

func (r rule) center() int { return (r.lo + r.hi) / 2 }

// Scan locates the grid in bmp. sink may be nil.
//
// Errors: ErrInvalidParams, *TooFewLinesError, ErrTooFewCoincidentLines,
// progress.ErrCancelled.
func Scan(ctx context.Context, bmp Bitmap, p Params, sink progress.Sink) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	sink = progress.OrNop(sink)
	logger := ctxlog.FromContext(ctx)
	b := bmp.Bounds
	sink.SetLabel("Scanning image", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()))

	horizontal, vertical, err := extract(ctx, bmp, p, sink)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Extracted line candidates.", "horizontal", len(horizontal), "vertical", len(vertical))
	if len(horizontal) < 3 {
		return Result{}, &TooFewLinesError{Orientation: Horizontal, Count: len(horizontal)}
	}
	if len(vertical) < 3 {
		return Result{}, &TooFewLinesError{Orientation: Vertical, Count: len(vertical)}
	}

	sink.SetLabel("Matching grid lines", "")
	res, err := search(ctx, horizontal, vertical, p, sink)
	if err != nil {
		return Result{}, err
	}
	sink.SetProgress(1)
	logger.Debug("Grid found.", "bounds", res.Bounds.String(), "columns", res.Columns, "rows", res.Rows)
	return res, nil
}

// extract collects dark runs row by row, then column by column.
func extract(ctx context.Context, bmp Bitmap, p Params, sink progress.Sink) (horizontal, vertical []Line, err error) {
	b := bmp.Bounds
	total := float64(b.Dx() + b.Dy())
	done := 0
	dark := func(x, y int) bool { return bmp.Brightness(x, y) < p.BrightnessThreshold }

	for y := b.Min.Y; y < b.Max.Y; y++ {
		if err = progress.Checkpoint(ctx); err != nil {
			return nil, nil, err
		}
		horizontal = appendRuns(horizontal, y, b.Min.X, b.Max.X, p.MinLineLength, func(x int) bool { return dark(x, y) })
		done++
		sink.SetProgress(float64(done) / total / 2)
	}
	for x := b.Min.X; x < b.Max.X; x++ {
		if err = progress.Checkpoint(ctx); err != nil {
			return nil, nil, err
		}
		vertical = appendRuns(vertical, x, b.Min.Y, b.Max.Y, p.MinLineLength, func(y int) bool { return dark(x, y) })
		done++
		sink.SetProgress(float64(done) / total / 2)
	}
	return horizontal, vertical, nil
}

// appendRuns adds every maximal dark run of [from,to) at pos that is at
// least minLen long.
func appendRuns(dst []Line, pos, from, to, minLen int, dark func(int) bool) []Line {
	start := -1
	for i := from; i <= to; i++ {
		if i < to && dark(i) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= minLen {
			dst = append(dst, Line{Pos: pos, Start: start, End: i})
		}
		start = -1
	}
	return dst
}

// coincident builds the combined rules of the lines whose endpoints lie
// within tolerance of datum. lines must be ordered by Pos.
func coincident(lines []Line, datum Line, p Params) []rule {
	var (
		out  []rule
		cur  rule
		open bool
	)
	for _, l := range lines {
		if abs(l.Start-datum.Start) > p.EndpointTolerance || abs(l.End-datum.End) > p.EndpointTolerance {
			continue
		}
		if !open {
			cur, open = rule{lo: l.Pos, hi: l.Pos, start: l.Start, end: l.End}, true
			continue
		}
		gap := l.Pos - cur.hi
		switch {
		case gap <= 1:
			cur.hi = max(cur.hi, l.Pos)
			cur.start = min(cur.start, l.Start)
			cur.end = max(cur.end, l.End)
		case gap < p.MinLineSeparation:
			// Anti-aliasing ghost: the subset is ambiguous past this point.
			return append(out, cur)
		default:
			out = append(out, cur)
			cur = rule{lo: l.Pos, hi: l.Pos, start: l.Start, end: l.End}
		}
	}
	if open {
		out = append(out, cur)
	}
	return out
}

// extent returns the position range [lo,hi] and span [start,end) of rules.
func extent(rules []rule) (lo, hi, start, end int) {
	lo, hi, start, end = rules[0].lo, rules[0].hi, rules[0].start, rules[0].end
	for _, r := range rules[1:] {
		lo, hi = min(lo, r.lo), max(hi, r.hi)
		start, end = min(start, r.start), max(end, r.end)
	}
	return lo, hi, start, end
}

type candidate struct {
	h, v []rule
	area int
}

func (c candidate) beats(o candidate) bool {
	if len(c.h) != len(o.h) {
		return len(c.h) > len(o.h)
	}
	if len(c.v) != len(o.v) {
		return len(c.v) > len(o.v)
	}
	return c.area > o.area
}

// search tries every horizontal datum and every vertical datum inside its
// relaxed box, keeping the best combination.
func search(ctx context.Context, horizontal, vertical []Line, p Params, sink progress.Sink) (Result, error) {
	tol := p.EndpointTolerance
	var best candidate

	for i, hd := range horizontal {
		if err := progress.Checkpoint(ctx); err != nil {
			return Result{}, err
		}
		sink.SetProgress(0.5 + 0.5*float64(i)/float64(len(horizontal)))

		hs := coincident(horizontal, hd, p)
		if len(hs) < 3 || len(hs) < len(best.h) {
			continue
		}
		ylo, yhi, xstart, xend := extent(hs)
		box := image.Rect(xstart, ylo, xend, yhi+1).Inset(-tol)

		var inBox []Line
		for _, l := range vertical {
			if l.Pos >= box.Min.X && l.Pos < box.Max.X && l.Start >= box.Min.Y && l.End <= box.Max.Y {
				inBox = append(inBox, l)
			}
		}
		for _, vd := range inBox {
			vs := coincident(inBox, vd, p)
			if len(vs) < 3 {
				continue
			}
			c := combine(hs, vs, tol)
			if len(c.h) >= 3 && c.beats(best) {
				best = c
			}
		}
	}

	if len(best.h) < 3 || len(best.v) < 3 {
		return Result{}, ErrTooFewCoincidentLines
	}
	return best.result(), nil
}

// combine drops horizontal rules outside the vertical rules' relaxed span
// and measures the result.
func combine(hs, vs []rule, tol int) candidate {
	xlo, xhi, ystart, yend := extent(vs)
	var kept []rule
	for _, h := range hs {
		if h.lo >= ystart-tol && h.hi < yend+tol {
			kept = append(kept, h)
		}
	}
	c := candidate{h: kept, v: vs}
	if len(kept) > 0 {
		ylo, yhi, _, _ := extent(kept)
		c.area = (xhi - xlo + 1) * (yhi - ylo + 1)
	}
	return c
}

func (c candidate) result() Result {
	xlo, xhi, _, _ := extent(c.v)
	ylo, yhi, _, _ := extent(c.h)
	res := Result{
		Bounds:  image.Rect(xlo, ylo, xhi+1, yhi+1),
		Columns: len(c.v) - 1,
		Rows:    len(c.h) - 1,
	}
	for _, r := range c.v {
		res.ColumnRules = append(res.ColumnRules, r.center())
	}
	for _, r := range c.h {
		res.RowRules = append(res.RowRules, r.center())
	}
	return res
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// SPDX-License-Identifier: MIT

package grid

// deriveFields registers on t every maximal run of at least two open cells
// not cut by a separator, numbered in row-major order of their first cell.
// A cell starting both an Across and a Down run carries one number.
//
// Complexity: O(W×H).
func deriveFields(l *Layout, t *Topology) error {
	number := 0
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			if l.IsBlock(c, r) {
				continue
			}
			across := runLength(l, c, r, 1, 0)
			down := runLength(l, c, r, 0, 1)
			startsAcross := across >= 2 && (c == 0 || l.separated(c-1, r, c, r))
			startsDown := down >= 2 && (r == 0 || l.separated(c, r-1, c, r))
			if !startsAcross && !startsDown {
				continue
			}
			number++
			if startsAcross {
				if _, err := t.AddField(r, c, Across, across, number); err != nil {
					return err
				}
			}
			if startsDown {
				if _, err := t.AddField(r, c, Down, down, number); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// runLength counts open cells from (c,r) stepping by (dc,dr) until a
// separator or the border.
func runLength(l *Layout, c, r, dc, dr int) int {
	n := 1
	for !l.separated(c, r, c+dc, r+dr) {
		c, r = c+dc, r+dr
		n++
	}
	return n
}

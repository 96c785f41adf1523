// SPDX-License-Identifier: MIT

// Package scan finds a crossword grid in a bitmap (a screenshot or a scanned
// page) and reports its bounding rectangle and column/row counts.
//
// Algorithm:
//
//  1. Extract dark runs per row (horizontal candidates) and per column
//     (vertical candidates), keeping those of at least MinLineLength pixels.
//     Fewer than three per orientation fails with *TooFewLinesError.
//  2. For each horizontal datum, keep the candidates whose endpoints lie
//     within EndpointTolerance of the datum's and merge adjacent ones (gap of
//     at most one pixel) into combined rules. A gap below MinLineSeparation
//     that is not adjacent ends the subset early.
//  3. Restrict vertical candidates to the relaxed bounding box of that
//     subset and run the same search on them.
//  4. Drop horizontal rules that fall outside the vertical rules' span.
//  5. Keep the combination with the most horizontal rules, then the most
//     vertical rules, then the largest area.
//
// Complexity: O(W×H) for extraction, O(Lh×(Lh + Lv²)) for the search, where
// Lh and Lv are candidate counts (tens on real screenshots).
//
// Scan checks ctx between rows and between datums and returns
// progress.ErrCancelled once it is done.
package scan

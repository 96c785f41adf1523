// SPDX-License-Identifier: MIT

// Package entries is the dense letter store behind a crossword grid, used
// both for the solver's entries and for the answer key.
//
// Every cell is tri-state:
//
//   - NoValue  : outside any field; permanently immutable.
//   - Undefined: inside a field, no letter yet.
//   - a letter : any other rune.
//
// Entries keeps running counters (NumCells, NumValues) so IsComplete and
// IsEmpty are O(1); SetValue adjusts them by comparing old and new state and
// never rescans. Clone is O(1): instances share their buffer copy-on-write,
// so a snapshot handed out for undo/redo can never be mutated through a
// stale reference.
//
// Complexity quicksheet:
//   - New, Clear, Compare, Equal, first write after Clone: O(r*c).
//   - InitValue, Value, SetValue, Clone, IsComplete, IsEmpty: O(1).
//
// Instances are not safe for concurrent mutation; one owner at a time.
package entries

// SPDX-License-Identifier: MIT

package entries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossgrid/entries"
)

// newStore builds a rows×cols buffer whose in-field cells are the '.' cells
// of layout ('#' cells stay NoValue).
func newStore(t *testing.T, layout ...string) *entries.Entries {
	t.Helper()
	e, err := entries.New(len(layout), len(layout[0]))
	require.NoError(t, err)
	for r, line := range layout {
		for c, ch := range line {
			if ch != '#' {
				require.NoError(t, e.InitValue(r, c))
			}
		}
	}
	return e
}

func TestNewInvalidDimensions(t *testing.T) {
	_, err := entries.New(0, 3)
	require.ErrorIs(t, err, entries.ErrInvalidDimensions)
	_, err = entries.New(3, -1)
	require.ErrorIs(t, err, entries.ErrInvalidDimensions)
}

func TestInitValueIsIdempotent(t *testing.T) {
	e, err := entries.New(2, 2)
	require.NoError(t, err)

	v, err := e.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, entries.NoValue, v)

	require.NoError(t, e.InitValue(0, 1))
	require.NoError(t, e.InitValue(0, 1))
	assert.Equal(t, 1, e.NumCells())

	v, err = e.Value(0, 1)
	require.NoError(t, err)
	assert.Equal(t, entries.Undefined, v)

	// InitValue never resets a letter.
	require.NoError(t, e.SetValue(0, 1, 'A'))
	require.NoError(t, e.InitValue(0, 1))
	v, _ = e.Value(0, 1)
	assert.Equal(t, 'A', v)
	assert.Equal(t, 1, e.NumCells())
}

func TestSetValueCounters(t *testing.T) {
	e := newStore(t,
		"..#",
		"...",
	)
	require.Equal(t, 5, e.NumCells())
	require.True(t, e.IsEmpty())

	require.NoError(t, e.SetValue(0, 0, 'C'))
	require.NoError(t, e.SetValue(0, 1, 'A'))
	assert.Equal(t, 2, e.NumValues())

	// Overwriting a letter with a letter keeps the count.
	require.NoError(t, e.SetValue(0, 1, 'O'))
	assert.Equal(t, 2, e.NumValues())

	// Back to Undefined decrements.
	require.NoError(t, e.SetValue(0, 0, entries.Undefined))
	assert.Equal(t, 1, e.NumValues())

	for _, rc := range [][2]int{{0, 0}, {1, 0}, {1, 1}, {1, 2}} {
		require.NoError(t, e.SetValue(rc[0], rc[1], 'X'))
	}
	assert.True(t, e.IsComplete())
	assert.False(t, e.IsEmpty())
}

func TestSetValueErrors(t *testing.T) {
	e := newStore(t, "#.")

	err := e.SetValue(0, 0, 'A')
	require.ErrorIs(t, err, entries.ErrNoValueCell)

	err = e.SetValue(0, 2, 'A')
	require.ErrorIs(t, err, entries.ErrOutOfRange)

	_, err = e.Value(-1, 0)
	require.ErrorIs(t, err, entries.ErrOutOfRange)

	for _, bad := range []rune{entries.NoValue, ' ', '\n', -7} {
		err = e.SetValue(0, 1, bad)
		require.ErrorIs(t, err, entries.ErrIllegalValue, "rune %q", bad)
	}
	assert.Equal(t, 0, e.NumValues())
}

func TestClearKeepsNoValue(t *testing.T) {
	e := newStore(t, ".#.")
	require.NoError(t, e.SetValue(0, 0, 'A'))
	require.NoError(t, e.SetValue(0, 2, 'B'))

	e.Clear()
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 2, e.NumCells())
	v, _ := e.Value(0, 1)
	assert.Equal(t, entries.NoValue, v)
	v, _ = e.Value(0, 2)
	assert.Equal(t, entries.Undefined, v)
}

func TestCompareMask(t *testing.T) {
	layout := []string{
		"..#",
		"#..",
	}
	user := newStore(t, layout...)
	sol := newStore(t, layout...)
	for _, w := range []struct {
		r, c int
		u, s rune
	}{
		{0, 0, 'A', 'A'},
		{0, 1, 'B', 'X'},
		{1, 1, entries.Undefined, 'Y'},
		{1, 2, 'Z', 'Z'},
	} {
		require.NoError(t, user.SetValue(w.r, w.c, w.u))
		require.NoError(t, sol.SetValue(w.r, w.c, w.s))
	}

	mask, err := user.Compare(sol)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{
		{false, true, false},
		{false, true, false},
	}, mask)

	n, err := user.ClearMasked(mask)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "only the letter B is cleared; (1,1) was already undefined")
	assert.Equal(t, 2, user.NumValues())
}

func TestCompareShapeMismatch(t *testing.T) {
	a := newStore(t, "..")
	b := newStore(t, ".#")
	_, err := a.Compare(b)
	require.ErrorIs(t, err, entries.ErrShapeMismatch)
	_, err = a.Compare(nil)
	require.ErrorIs(t, err, entries.ErrShapeMismatch)
	assert.False(t, a.SameLayout(b))
}

func TestCloneIsCopyOnWrite(t *testing.T) {
	orig := newStore(t, "...")
	require.NoError(t, orig.SetValue(0, 0, 'A'))

	snap := orig.Clone()
	require.True(t, snap.Equal(orig))

	// Writing to the original does not leak into the snapshot.
	require.NoError(t, orig.SetValue(0, 1, 'B'))
	v, _ := snap.Value(0, 1)
	assert.Equal(t, entries.Undefined, v)
	assert.Equal(t, 1, snap.NumValues())

	// Writing to the snapshot does not leak into the original.
	require.NoError(t, snap.SetValue(0, 2, 'C'))
	v, _ = orig.Value(0, 2)
	assert.Equal(t, entries.Undefined, v)

	// Clear on a fresh clone leaves the source intact.
	again := orig.Clone()
	again.Clear()
	assert.Equal(t, 2, orig.NumValues())
	assert.True(t, again.IsEmpty())
}

func TestString(t *testing.T) {
	e := newStore(t, ".#", "..")
	require.NoError(t, e.SetValue(1, 1, 'Q'))
	assert.Equal(t, ".#\n.Q\n", e.String())
}

// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/crossgrid/entries"
)

// Topology is the registry of a grid's fields plus the entry store they
// index into. Fields are grouped by direction and kept sorted by number.
type Topology struct {
	cols, rows int
	across     []Field
	down       []Field
	entries    *entries.Entries
	opts       Options
}

// NewTopology returns an empty topology over a cols×rows entry store.
func NewTopology(cols, rows int, opts ...Option) (*Topology, error) {
	if err := checkDimensions(cols, rows); err != nil {
		return nil, err
	}
	e, err := entries.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return &Topology{cols: cols, rows: rows, entries: e, opts: gatherOptions(opts...)}, nil
}

// Options returns the entry configuration in effect.
func (t *Topology) Options() Options { return t.opts }

func (t *Topology) byDirection(d Direction) *[]Field {
	if d == Down {
		return &t.down
	}
	return &t.across
}

// AddField registers a field and marks its cells as in-field.
//
// Errors:
//   - ErrBadField when the direction is unset, length < 1, number < 1, or a
//     cell falls outside the grid.
//   - ErrDuplicateField when number+direction is already registered.
//
// Complexity: O(F + length).
func (t *Topology) AddField(row, col int, dir Direction, length, number int) (Field, error) {
	f := Field{Row: row, Col: col, Direction: dir, Length: length, Number: number}
	if dir != Across && dir != Down || length < 1 || number < 1 {
		return Field{}, fmt.Errorf("%w: %s", ErrBadField, f)
	}
	lastRow, lastCol := f.Cell(length - 1)
	if row < 0 || col < 0 || lastRow >= t.rows || lastCol >= t.cols {
		return Field{}, fmt.Errorf("%w: %s leaves the %dx%d grid", ErrBadField, f, t.cols, t.rows)
	}
	list := t.byDirection(dir)
	i := sort.Search(len(*list), func(i int) bool { return (*list)[i].Number >= number })
	if i < len(*list) && (*list)[i].Number == number {
		return Field{}, fmt.Errorf("%w: %s", ErrDuplicateField, f.ID())
	}
	*list = append(*list, Field{})
	copy((*list)[i+1:], (*list)[i:])
	(*list)[i] = f

	for k := 0; k < length; k++ {
		r, c := f.Cell(k)
		if err := t.entries.InitValue(r, c); err != nil {
			return Field{}, err
		}
	}
	return f, nil
}

// Field returns the field with exactly this number and direction.
// An id without direction never matches; use FieldsFor for wildcards.
func (t *Topology) Field(id FieldID) (Field, bool) {
	if id.Direction != Across && id.Direction != Down {
		return Field{}, false
	}
	list := *t.byDirection(id.Direction)
	i := sort.Search(len(list), func(i int) bool { return list[i].Number >= id.Number })
	if i < len(list) && list[i].Number == id.Number {
		return list[i], true
	}
	return Field{}, false
}

// FindFields returns, in canonical order, every field satisfying pred.
// Complexity: O(F).
func (t *Topology) FindFields(pred func(Field) bool) []Field {
	var out []Field
	for _, list := range [][]Field{t.across, t.down} {
		for _, f := range list {
			if pred(f) {
				out = append(out, f)
			}
		}
	}
	return out
}

// FieldsFor returns the fields matching id, honouring the NoDirection wildcard.
func (t *Topology) FieldsFor(id FieldID) []Field {
	return t.FindFields(func(f Field) bool { return id.Matches(f.ID()) })
}

// FieldsAt returns the fields covering (row,col), across first.
func (t *Topology) FieldsAt(row, col int) []Field {
	return t.FindFields(func(f Field) bool {
		_, ok := f.Contains(row, col)
		return ok
	})
}

// Fields returns all fields in canonical order: Across by number, then Down
// by number. The slice is a copy.
func (t *Topology) Fields() []Field {
	out := make([]Field, 0, len(t.across)+len(t.down))
	out = append(out, t.across...)
	return append(out, t.down...)
}

// NumFields returns the number of registered fields.
func (t *Topology) NumFields() int { return len(t.across) + len(t.down) }

// FieldLengths returns field lengths in canonical order.
func (t *Topology) FieldLengths() []int {
	out := make([]int, 0, t.NumFields())
	for _, f := range t.Fields() {
		out = append(out, f.Length)
	}
	return out
}

// UncrossedFields reports every field owning at least one cell that no
// perpendicular field covers (an isolated answer run). A well-formed grid
// where all fields fully intersect returns nil.
// Complexity: O(W×H + Σ length).
func (t *Topology) UncrossedFields() []Field {
	covered := map[Direction][]bool{
		Across: t.coverage(t.across),
		Down:   t.coverage(t.down),
	}
	return t.FindFields(func(f Field) bool {
		cross := covered[f.Direction.Perpendicular()]
		for k := 0; k < f.Length; k++ {
			r, c := f.Cell(k)
			if !cross[r*t.cols+c] {
				return true
			}
		}
		return false
	})
}

func (t *Topology) coverage(fields []Field) []bool {
	out := make([]bool, t.cols*t.rows)
	for _, f := range fields {
		for k := 0; k < f.Length; k++ {
			r, c := f.Cell(k)
			out[r*t.cols+c] = true
		}
	}
	return out
}

// Entries returns a snapshot of the entry store. The snapshot shares memory
// copy-on-write and can never be mutated through the grid, nor vice versa.
func (t *Topology) Entries() *entries.Entries { return t.entries.Clone() }

// ReplaceEntries swaps in e (undo/redo). e must have this grid's shape and
// in-field cells; the topology keeps its own snapshot of e.
func (t *Topology) ReplaceEntries(e *entries.Entries) error {
	if !t.entries.SameLayout(e) {
		return entries.ErrShapeMismatch
	}
	t.entries = e.Clone()
	return nil
}

// ClearEntries resets every in-field cell to undefined.
func (t *Topology) ClearEntries() { t.entries.Clear() }

// IsComplete reports whether every in-field cell holds a letter.
func (t *Topology) IsComplete() bool { return t.entries.IsComplete() }

// IsEmpty reports whether no cell holds a letter.
func (t *Topology) IsEmpty() bool { return t.entries.IsEmpty() }

// BlankEntries returns an entry store with this topology's in-field cells,
// all undefined.
func (t *Topology) BlankEntries() *entries.Entries {
	e := t.entries.Clone()
	e.Clear()
	return e
}

// SetEntries bulk-loads one text per field in canonical order. Each text
// uses the undefined mark for empty cells.
//
// Validation happens in stages:
//  1. the text count must equal NumFields (ErrIncorrectCount);
//  2. every text must match its field length (ErrIncorrectLength); no cell
//     is touched if this fails;
//  3. the store is cleared, then fields are written in order. An illegal
//     character or a letter that disagrees with an earlier intersecting
//     field stops the load with a *FieldError; writes made before the
//     failing field are kept. Snapshot with Entries first if atomicity
//     matters.
func (t *Topology) SetEntries(texts []string) error {
	return t.fill(t.entries, texts)
}

// FillEntries runs the SetEntries algorithm against a fresh store and
// returns it, leaving the grid's own entries untouched. It is how answer
// keys are built.
func (t *Topology) FillEntries(texts []string) (*entries.Entries, error) {
	dst := t.BlankEntries()
	if err := t.fill(dst, texts); err != nil {
		return nil, err
	}
	return dst, nil
}

func (t *Topology) fill(dst *entries.Entries, texts []string) error {
	fields := t.Fields()
	if len(texts) != len(fields) {
		return fmt.Errorf("%w: %d texts for %d fields", ErrIncorrectCount, len(texts), len(fields))
	}
	for i, f := range fields {
		if n := utf8.RuneCountInString(texts[i]); n != f.Length {
			return &FieldError{Code: ErrIncorrectLength, ID: f.ID(), Want: f.Length, Got: n}
		}
	}

	dst.Clear()
	for i, f := range fields {
		k := 0
		for _, ch := range texts[i] {
			if err := t.writeChecked(dst, f, k, ch); err != nil {
				return err
			}
			k++
		}
	}
	return nil
}

// writeChecked stores ch at index k of f, refusing illegal characters and
// letters that disagree with what an earlier field wrote.
func (t *Topology) writeChecked(dst *entries.Entries, f Field, k int, ch rune) error {
	if ch == t.opts.undefinedMark {
		return nil
	}
	ch = t.opts.normalize(ch)
	if !t.opts.allows(ch) {
		return &FieldError{Code: ErrIllegalCharacter, ID: f.ID(), Index: k, Char: ch}
	}
	r, c := f.Cell(k)
	cur, err := dst.Value(r, c)
	if err != nil {
		return err
	}
	if entries.IsLetter(cur) && cur != ch {
		fe := &FieldError{Code: ErrConflictingEntry, ID: f.ID(), Index: k, Char: ch}
		for _, other := range t.FieldsAt(r, c) {
			if other.ID() != f.ID() {
				fe.Crossing = other.ID()
				break
			}
		}
		return fe
	}
	return dst.SetValue(r, c, ch)
}

// EntryTexts returns each field's current letters in canonical order, with
// the undefined mark for empty cells.
func (t *Topology) EntryTexts() []string {
	return t.TextsOf(t.entries)
}

// TextsOf renders e (a store of this topology's shape) per field in
// canonical order.
func (t *Topology) TextsOf(e *entries.Entries) []string {
	fields := t.Fields()
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = t.textOf(e, f)
	}
	return out
}

func (t *Topology) textOf(e *entries.Entries, f Field) string {
	var sb strings.Builder
	for k := 0; k < f.Length; k++ {
		r, c := f.Cell(k)
		v, _ := e.Value(r, c)
		if entries.IsLetter(v) {
			sb.WriteRune(v)
		} else {
			sb.WriteRune(t.opts.undefinedMark)
		}
	}
	return sb.String()
}

// EntryText returns one field's letters.
func (t *Topology) EntryText(id FieldID) (string, error) {
	f, ok := t.Field(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}
	return t.textOf(t.entries, f), nil
}

// SetEntry overwrites one field as a solver would type it: crossing letters
// are replaced, not checked. The text is validated in full before any cell
// is written.
func (t *Topology) SetEntry(id FieldID, text string) error {
	f, ok := t.Field(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, id)
	}
	runes := []rune(text)
	if len(runes) != f.Length {
		return &FieldError{Code: ErrIncorrectLength, ID: id, Want: f.Length, Got: len(runes)}
	}
	values := make([]rune, len(runes))
	for k, ch := range runes {
		if ch == t.opts.undefinedMark {
			values[k] = entries.Undefined
			continue
		}
		ch = t.opts.normalize(ch)
		if !t.opts.allows(ch) {
			return &FieldError{Code: ErrIllegalCharacter, ID: id, Index: k, Char: ch}
		}
		values[k] = ch
	}
	for k, v := range values {
		r, c := f.Cell(k)
		if err := t.entries.SetValue(r, c, v); err != nil {
			return err
		}
	}
	return nil
}

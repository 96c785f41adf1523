// SPDX-License-Identifier: MIT

package xmldoc

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/katalvlaran/crossgrid/grid"
	"github.com/katalvlaran/crossgrid/solution"
	"github.com/katalvlaran/crossgrid/symmetry"
)

// KindRectangular is the only grid kind this engine reads.
const KindRectangular = "rectangular-orthogonal"

// BodyWidth is the line width of base64 solution bodies.
const BodyWidth = 64

// Puzzle is the root element.
type Puzzle struct {
	XMLName  xml.Name  `xml:"puzzle"`
	Grid     *Grid     `xml:"grid"`
	Entries  *Entries  `xml:"entries,omitempty"`
	Solution *Solution `xml:"solution,omitempty"`
}

// Grid describes the layout. The definition body is written raw so its
// line breaks survive; its markers need no escaping.
type Grid struct {
	Kind       string `xml:"kind,attr"`
	Separator  string `xml:"separator,attr"`
	Columns    int    `xml:"numColumns,attr"`
	Rows       int    `xml:"numRows,attr"`
	Symmetry   string `xml:"symmetry,attr"`
	Definition string `xml:",innerxml"`
}

// Entries lists the non-empty fields.
type Entries struct {
	Items []Entry `xml:"entry"`
}

// Entry is one field's letters; undefined cells use the undefined mark.
type Entry struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// Solution is an answer key, embedded or by reference.
type Solution struct {
	Encryption string `xml:"encryption,attr,omitempty"`
	Nonce      string `xml:"nonce,attr,omitempty"`
	Hash       string `xml:"hash,attr"`
	Location   string `xml:"location,attr,omitempty"`
	Body       string `xml:",innerxml"`
}

// Read decodes a puzzle document.
func Read(r io.Reader) (*Puzzle, error) {
	var p Puzzle
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("xmldoc: decoding puzzle: %w", err)
	}
	return &p, nil
}

// Write encodes p with two-space indentation and an XML header.
func Write(w io.Writer, p *Puzzle) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("xmldoc: encoding puzzle: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// FromGrid captures g's layout and entries.
func FromGrid(g *grid.Grid) *Puzzle {
	return &Puzzle{Grid: NewGrid(g), Entries: NewEntries(g)}
}

// NewGrid describes g's layout.
func NewGrid(g *grid.Grid) *Grid {
	return &Grid{
		Kind:       KindRectangular,
		Separator:  g.Separator().Key(),
		Columns:    g.Cols(),
		Rows:       g.Rows(),
		Symmetry:   g.Symmetry().Key(),
		Definition: "\n" + g.Definition() + "\n",
	}
}

// Build validates the element and derives the grid.
func (x *Grid) Build(opts ...grid.Option) (*grid.Grid, error) {
	if x.Kind != KindRectangular {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, x.Kind)
	}
	sep, err := grid.ParseSeparator(x.Separator)
	if err != nil {
		return nil, err
	}
	sym := symmetry.None
	if x.Symmetry != "" {
		if sym, err = symmetry.Parse(x.Symmetry); err != nil {
			return nil, err
		}
	}
	return grid.FromDefinition(sep, x.Columns, x.Rows, sym, x.Definition, opts...)
}

// NewEntries lists every field of g holding at least one letter.
func NewEntries(g *grid.Grid) *Entries {
	mark := string(g.Options().UndefinedMark())
	texts := g.EntryTexts()
	out := &Entries{}
	for i, f := range g.Fields() {
		if strings.Trim(texts[i], mark) == "" {
			continue
		}
		out.Items = append(out.Items, Entry{ID: f.ID().String(), Text: texts[i]})
	}
	return out
}

// Texts expands the element into one text per field of t in canonical
// order, ready for Topology.SetEntries. Missing fields are all undefined.
func (x *Entries) Texts(t *grid.Topology) ([]string, error) {
	fields := t.Fields()
	mark := string(t.Options().UndefinedMark())
	texts := make([]string, len(fields))
	for i, f := range fields {
		texts[i] = strings.Repeat(mark, f.Length)
	}
	if x == nil {
		return texts, nil
	}
	for _, e := range x.Items {
		id, err := grid.ParseFieldID(e.ID)
		if err != nil {
			return nil, err
		}
		found := false
		for i, f := range fields {
			if f.ID() == id {
				texts[i] = strings.TrimSpace(e.Text)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", grid.ErrFieldNotFound, e.ID)
		}
	}
	return texts, nil
}

// LoadGrid builds the grid and loads its entries.
func (p *Puzzle) LoadGrid(opts ...grid.Option) (*grid.Grid, error) {
	if p.Grid == nil {
		return nil, ErrNoGrid
	}
	g, err := p.Grid.Build(opts...)
	if err != nil {
		return nil, err
	}
	texts, err := p.Entries.Texts(g.Topology)
	if err != nil {
		return nil, err
	}
	if err = g.SetEntries(texts); err != nil {
		return nil, err
	}
	return g, nil
}

// NewSolution renders an embedded answer key.
func NewSolution(enc solution.Encoded) *Solution {
	s := &Solution{
		Encryption: enc.Encryption.Key(),
		Hash:       hex.EncodeToString(enc.Hash),
		Body:       wrap(base64.StdEncoding.EncodeToString(enc.Ciphertext), BodyWidth),
	}
	if len(enc.Nonce) > 0 {
		s.Nonce = hex.EncodeToString(enc.Nonce)
	}
	return s
}

// NewSolutionRef renders a by-reference answer key.
func NewSolutionRef(location string, hash []byte) *Solution {
	return &Solution{Hash: hex.EncodeToString(hash), Location: location}
}

// IsReference reports whether the answer key lives at Location.
func (s *Solution) IsReference() bool { return s.Location != "" }

// HashBytes decodes the hash attribute.
func (s *Solution) HashBytes() ([]byte, error) {
	if s.Hash == "" {
		return nil, fmt.Errorf("%w: solution hash missing", ErrMalformed)
	}
	h, err := hex.DecodeString(s.Hash)
	if err != nil {
		return nil, fmt.Errorf("%w: solution hash: %v", ErrMalformed, err)
	}
	return h, nil
}

// Encoded decodes an embedded answer key.
func (s *Solution) Encoded() (solution.Encoded, error) {
	if s.IsReference() {
		return solution.Encoded{}, fmt.Errorf("%w: solution is a reference to %s", ErrMalformed, s.Location)
	}
	encryption, err := solution.ParseEncryption(s.Encryption)
	if err != nil {
		return solution.Encoded{}, err
	}
	hash, err := s.HashBytes()
	if err != nil {
		return solution.Encoded{}, err
	}
	var nonce []byte
	if s.Nonce != "" {
		if nonce, err = hex.DecodeString(s.Nonce); err != nil {
			return solution.Encoded{}, fmt.Errorf("%w: solution nonce: %v", ErrMalformed, err)
		}
	}
	body, err := base64.StdEncoding.DecodeString(stripSpace(s.Body))
	if err != nil {
		return solution.Encoded{}, fmt.Errorf("%w: solution body: %v", ErrMalformed, err)
	}
	return solution.Encoded{Encryption: encryption, Nonce: nonce, Hash: hash, Ciphertext: body}, nil
}

// wrap breaks s into lines of at most width bytes, framed by newlines.
func wrap(s string, width int) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for len(s) > width {
		sb.WriteString(s[:width])
		sb.WriteByte('\n')
		s = s[width:]
	}
	sb.WriteString(s)
	sb.WriteByte('\n')
	return sb.String()
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

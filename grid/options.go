// SPDX-License-Identifier: MIT

package grid

import (
	"strings"
	"unicode"
)

// DefaultUndefinedMark stands for an in-field cell without a letter in
// entry texts.
const DefaultUndefinedMark = '.'

const (
	panicUndefinedMarkInvalid = "grid: WithUndefinedMark: mark must not be a letter, digit or space"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the explicit entry configuration of a grid. It replaces any
// process-wide defaults; build it from config.Config.GridOptions.
type Options struct {
	allowed       string // upper-cased allowed set; empty means any letter or digit
	undefinedMark rune
}

// WithAllowedCharacters restricts entries to the given characters
// (case-insensitive). An empty set restores the default: any Unicode letter
// or digit.
func WithAllowedCharacters(chars string) Option {
	return func(o *Options) { o.allowed = strings.ToUpper(chars) }
}

// WithUndefinedMark sets the character that stands for an empty cell in
// entry texts.
func WithUndefinedMark(mark rune) Option {
	if unicode.IsLetter(mark) || unicode.IsDigit(mark) || unicode.IsSpace(mark) || mark <= 0 {
		panic(panicUndefinedMarkInvalid)
	}
	return func(o *Options) { o.undefinedMark = mark }
}

func gatherOptions(opts ...Option) Options {
	o := Options{undefinedMark: DefaultUndefinedMark}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// normalize upper-cases ch.
func (o Options) normalize(ch rune) rune {
	return unicode.ToUpper(ch)
}

// allows reports whether a normalized ch may be entered.
func (o Options) allows(ch rune) bool {
	if o.allowed == "" {
		return unicode.IsLetter(ch) || unicode.IsDigit(ch)
	}
	return strings.ContainsRune(o.allowed, ch)
}

// UndefinedMark returns the configured empty-cell character.
func (o Options) UndefinedMark() rune { return o.undefinedMark }

// AllowedCharacters returns the configured set; empty means any letter or digit.
func (o Options) AllowedCharacters() string { return o.allowed }

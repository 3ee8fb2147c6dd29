// Released under an MIT license. See LICENSE.

// Package str provides nemo's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the double-quoted representation of the str s.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// Runes returns the characters in the str s.
func (s *str) Runes() []rune {
	return []rune(string(*s))
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*str); ok {
		return t
	}

	panic(name + " type expected, got " + c.Name())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)
}

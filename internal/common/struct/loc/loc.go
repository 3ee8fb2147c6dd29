// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where tokens and nodes came from.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Column, starting at 1.
	Line int    // Row, starting at 1.
	Name string // File name or other label for the source.
}

type loc = T

// New creates a location at line 1, column 1 of the source called name.
func New(name string) *loc {
	return &loc{Char: 1, Line: 1, Name: name}
}

func (l *loc) String() string {
	if l == nil {
		return "?"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}

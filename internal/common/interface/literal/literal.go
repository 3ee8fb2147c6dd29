// Released under an MIT license. See LICENSE.

// Package literal defines the interface for nemo values that can be printed.
package literal

import (
	"fmt"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// Display returns the form used by print. Strings are not quoted.
func Display(c cell.I) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return String(c)
}

// String returns the literal string representation for a cell.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return l.Literal()
}

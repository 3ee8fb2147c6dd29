// Released under an MIT license. See LICENSE.

// Package unit provides nemo's unit value.
// It is the result of assignments, loops and empty blocks.
package unit

import (
	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
)

const name = "unit"

// T (unit) has exactly one value.
type T struct{}

type unit = T

//nolint:gochecknoglobals
var Value = &unit{}

// Equal returns true if c is also unit.
func (u *unit) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of unit.
func (u *unit) Literal() string {
	return "()"
}

// Name returns the type name for unit.
func (u *unit) Name() string {
	return name
}

// Is returns true if c is unit.
func Is(c cell.I) bool {
	_, ok := c.(*unit)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t unit

	// The unit type is a cell.
	_ = cell.I(&t)

	// The unit type has a literal representation.
	_ = literal.I(&t)
}

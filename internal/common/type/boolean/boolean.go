// Released under an MIT license. See LICENSE.

// Package boolean provides nemo's boolean value type.
package boolean

import (
	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool creates new boolean from the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Truthy reports whether c counts as true in a condition.
// Only false is falsy. Zero, the empty string and unit are all truthy.
func Truthy(c cell.I) bool {
	b, ok := c.(*boolean)

	return !ok || b.Bool()
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*boolean); ok {
		return t
	}

	panic(name + " type expected, got " + c.Name())
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)
}

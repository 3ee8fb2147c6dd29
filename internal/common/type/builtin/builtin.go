// Released under an MIT license. See LICENSE.

// Package builtin provides nemo's native function type.
package builtin

import (
	"context"
	"strconv"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
)

const name = "builtin"

// Func is the Go implementation of a builtin.
// The argument count has already been checked against the builtin's arity.
type Func func(ctx context.Context, args []cell.I) (cell.I, error)

// T (builtin) is a named native function with a fixed arity.
type T struct {
	Fn    Func
	Label string
	arity int
}

type builtin = T

// New creates a new builtin.
func New(label string, arity int, fn Func) *builtin {
	return &builtin{Fn: fn, Label: label, arity: arity}
}

// Arity returns the number of arguments the builtin b expects.
func (b *builtin) Arity() int {
	return b.arity
}

// Equal returns true if c is the same builtin.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b == To(c)
}

// Literal returns a printable representation of the builtin b.
func (b *builtin) Literal() string {
	return "<" + name + " " + b.Label + "/" + strconv.Itoa(b.arity) + ">"
}

// Name returns the name of the builtin type.
func (b *builtin) Name() string {
	return name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*builtin)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*builtin); ok {
		return t
	}

	panic(name + " type expected, got " + c.Name())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)

	// The builtin type has a literal representation.
	_ = literal.I(&t)
}

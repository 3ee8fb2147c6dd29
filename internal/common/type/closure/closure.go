// Released under an MIT license. See LICENSE.

// Package closure provides nemo's user-defined function type.
package closure

import (
	"strconv"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
	"github.com/michaelmacinnis/nemo/internal/common/struct/frame"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

const name = "closure"

// T (closure) pairs a function body with the frame it was created in.
type T struct {
	Body   ast.Node
	Frame  *frame.T
	Label  string
	Params []string
}

type closure = T

// New creates a new closure. The label may be empty for lambdas.
func New(label string, params []string, body ast.Node, f *frame.T) *closure {
	return &closure{
		Body:   body,
		Frame:  f,
		Label:  label,
		Params: params,
	}
}

// Arity returns the number of parameters the closure c expects.
func (c *closure) Arity() int {
	return len(c.Params)
}

// Equal returns true if v is the same closure. Closures compare by identity.
func (c *closure) Equal(v cell.I) bool {
	return Is(v) && c == To(v)
}

// Literal returns a printable representation of the closure c.
func (c *closure) Literal() string {
	l := c.Label
	if l == "" {
		l = "lambda"
	}

	return "<" + name + " " + l + "/" + strconv.Itoa(c.Arity()) + ">"
}

// Name returns the name of the closure type.
func (c *closure) Name() string {
	return name
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*closure)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*closure); ok {
		return t
	}

	panic(name + " type expected, got " + c.Name())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}

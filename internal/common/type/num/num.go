// Released under an MIT license. See LICENSE.

// Package num provides nemo's number type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from a float64.
func New(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return New(float64(i))
}

// Parse creates a num from its textual representation.
func Parse(s string) (cell.I, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return New(f), nil
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the shortest text that represents the num n.
func (n *num) String() string {
	return strconv.FormatFloat(n.Float(), 'f', -1, 64)
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*num); ok {
		return t
	}

	panic(name + " type expected, got " + c.Name())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)
}

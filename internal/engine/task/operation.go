// Released under an MIT license. See LICENSE.

package task

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/struct/frame"
	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
	"github.com/michaelmacinnis/nemo/internal/common/type/boolean"
	"github.com/michaelmacinnis/nemo/internal/common/type/errsys"
	"github.com/michaelmacinnis/nemo/internal/common/type/num"
	"github.com/michaelmacinnis/nemo/internal/common/type/str"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

func (t *T) binary(n *ast.Binary, f *frame.T) (cell.I, error) {
	switch n.Op {
	case ast.Pipe:
		return t.pipe(n, f)
	case ast.And, ast.Or:
		return t.logical(n, f)
	}

	l, err := t.Eval(n.Left, f)
	if err != nil {
		return nil, err
	}

	r, err := t.Eval(n.Right, f)
	if err != nil {
		return nil, err
	}

	return Operate(n.Op, l, r, n.Source())
}

func (t *T) logical(n *ast.Binary, f *frame.T) (cell.I, error) {
	l, err := t.Eval(n.Left, f)
	if err != nil {
		return nil, err
	}

	b := boolean.Truthy(l)
	if (n.Op == ast.And && !b) || (n.Op == ast.Or && b) {
		return boolean.Bool(b), nil
	}

	r, err := t.Eval(n.Right, f)
	if err != nil {
		return nil, err
	}

	return boolean.Bool(boolean.Truthy(r)), nil
}

// Operate applies a strict binary operator to l and r.
// Values are never coerced from one type to another.
func Operate(op ast.Op, l, r cell.I, source *loc.T) (cell.I, error) { //nolint:cyclop
	switch op {
	case ast.Eq:
		return boolean.Bool(l.Equal(r)), nil
	case ast.Ne:
		return boolean.Bool(!l.Equal(r)), nil
	case ast.Add:
		if str.Is(l) && str.Is(r) {
			return str.New(str.To(l).String() + str.To(r).String()), nil
		}
	case ast.Lt, ast.Gt, ast.Le, ast.Ge:
		if str.Is(l) && str.Is(r) {
			return compare(op, strings.Compare(str.To(l).String(), str.To(r).String())), nil
		}
	case ast.And, ast.Or, ast.Pipe:
		return nil, fmt.Errorf("%s: %s is not a strict operator", source, op)
	}

	if !num.Is(l) || !num.Is(r) {
		return nil, errsys.New(errsys.TypeMismatch, source, "%s %s %s", l.Name(), op, r.Name())
	}

	a, b := num.To(l).Float(), num.To(r).Float()

	switch op {
	case ast.Add:
		return num.New(a + b), nil
	case ast.Sub:
		return num.New(a - b), nil
	case ast.Mul:
		return num.New(a * b), nil
	case ast.Div:
		if b == 0 {
			return nil, errsys.New(errsys.DivisionByZero, source, "%s / 0", num.To(l))
		}

		return num.New(a / b), nil
	case ast.Mod:
		if b == 0 {
			return nil, errsys.New(errsys.DivisionByZero, source, "%s %% 0", num.To(l))
		}

		return num.New(math.Mod(a, b)), nil
	}

	return compare(op, cmp.Compare(a, b)), nil
}

func compare(op ast.Op, c int) cell.I {
	switch op {
	case ast.Lt:
		return boolean.Bool(c < 0)
	case ast.Gt:
		return boolean.Bool(c > 0)
	case ast.Le:
		return boolean.Bool(c <= 0)
	default:
		return boolean.Bool(c >= 0)
	}
}

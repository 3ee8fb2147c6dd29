// Released under an MIT license. See LICENSE.

package task

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/struct/frame"
	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
	"github.com/michaelmacinnis/nemo/internal/common/type/boolean"
	"github.com/michaelmacinnis/nemo/internal/common/type/builtin"
	"github.com/michaelmacinnis/nemo/internal/common/type/closure"
	"github.com/michaelmacinnis/nemo/internal/common/type/errsys"
	"github.com/michaelmacinnis/nemo/internal/common/type/num"
	"github.com/michaelmacinnis/nemo/internal/common/type/pipe"
	"github.com/michaelmacinnis/nemo/internal/common/type/str"
	"github.com/michaelmacinnis/nemo/internal/common/type/unit"
	"github.com/michaelmacinnis/nemo/internal/common/validate"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

// Eval evaluates the node n in the frame f.
func (t *T) Eval(n ast.Node, f *frame.T) (cell.I, error) { //nolint:cyclop,funlen
	switch n := n.(type) {
	case *ast.Number:
		return num.New(n.Value), nil
	case *ast.Str:
		return str.New(n.Value), nil
	case *ast.Bool:
		return boolean.Bool(n.Value), nil
	case *ast.FinishedPipe:
		return pipe.End, nil
	case *ast.Name:
		v, ok := f.Resolve(n.Name)
		if !ok {
			return nil, errsys.New(errsys.UnboundName, n.Source(), "'%s'", n.Name)
		}

		return v, nil
	case *ast.Assignment:
		v, err := t.Eval(n.Expr, f)
		if err != nil {
			return nil, err
		}

		f.Assign(n.Name, v)

		return unit.Value, nil
	case *ast.Definition:
		f.Define(n.Name, closure.New(n.Name, n.Params, n.Body, f))

		return unit.Value, nil
	case *ast.Lambda:
		return closure.New("", n.Params, n.Body, f), nil
	case *ast.Push:
		return t.push(n, f)
	case *ast.Pull:
		return t.pull(n)
	case *ast.Return:
		var v cell.I = unit.Value

		if n.Expr != nil {
			var err error

			v, err = t.Eval(n.Expr, f)
			if err != nil {
				return nil, err
			}
		}

		return nil, &returning{value: v}
	case *ast.Binary:
		return t.binary(n, f)
	case *ast.If:
		return t.conditional(n, f)
	case *ast.While:
		return t.loop(n, f)
	case *ast.Block:
		return t.block(n, f)
	case *ast.Call:
		return t.call(n, f)
	case *ast.Index:
		return t.index(n, f)
	}

	return nil, fmt.Errorf("%s: cannot evaluate %T", n.Source(), n)
}

func (t *T) apply(c cell.I, args []cell.I, source *loc.T) (cell.I, error) {
	if err := t.ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case closure.Is(c):
		k := closure.To(c)

		err := validate.Fixed(source, label(k.Label), args, k.Arity())
		if err != nil {
			return nil, err
		}

		if t.depth >= MaxDepth {
			return nil, errsys.New(errsys.RecursionLimit, source, "calls nested deeper than %d", MaxDepth)
		}

		t.depth++
		defer func() { t.depth-- }()

		scope := frame.New(k.Frame)
		for i, p := range k.Params {
			scope.Define(p, args[i])
		}

		v, err := t.Eval(k.Body, scope)

		var r *returning
		if errors.As(err, &r) {
			return r.value, nil
		}

		return v, err
	case builtin.Is(c):
		b := builtin.To(c)

		err := validate.Fixed(source, b.Label, args, b.Arity())
		if err != nil {
			return nil, err
		}

		v, err := b.Fn(t.ctx, args)
		if err != nil {
			return nil, native(err, source)
		}

		return v, nil
	}

	return nil, errsys.New(errsys.NotCallable, source, "%s is not a function", c.Name())
}

func (t *T) block(n *ast.Block, f *frame.T) (cell.I, error) {
	scope := frame.New(f)

	var v cell.I = unit.Value

	for _, e := range n.Exprs {
		var err error

		v, err = t.Eval(e, scope)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

func (t *T) call(n *ast.Call, f *frame.T) (cell.I, error) {
	c, err := t.Eval(n.Callee, f)
	if err != nil {
		return nil, err
	}

	args := make([]cell.I, 0, len(n.Args))

	for _, a := range n.Args {
		v, err := t.Eval(a, f)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	if ce := t.log.Check(zap.DebugLevel, "call"); ce != nil {
		ce.Write(
			zap.String("callee", n.Callee.String()),
			zap.Int("depth", t.depth),
			zap.Stringer("source", n.Source()),
		)
	}

	return t.apply(c, args, n.Source())
}

func (t *T) conditional(n *ast.If, f *frame.T) (cell.I, error) {
	c, err := t.Eval(n.Cond, f)
	if err != nil {
		return nil, err
	}

	if boolean.Truthy(c) {
		return t.Eval(n.Then, f)
	}

	if n.Else == nil {
		return unit.Value, nil
	}

	return t.Eval(n.Else, f)
}

func (t *T) index(n *ast.Index, f *frame.T) (cell.I, error) {
	target, err := t.Eval(n.Target, f)
	if err != nil {
		return nil, err
	}

	key, err := t.Eval(n.Key, f)
	if err != nil {
		return nil, err
	}

	if str.Is(target) && num.Is(key) {
		rs := str.To(target).Runes()
		i := num.To(key).Float()

		if i != math.Trunc(i) || i < 0 || i >= float64(len(rs)) {
			return nil, errsys.New(errsys.InvalidIndex, n.Source(), "%s out of range for string of length %d", num.To(key), len(rs))
		}

		return str.New(string(rs[int(i)])), nil
	}

	if str.Is(key) {
		switch k := str.To(key).String(); {
		case k == "length" && str.Is(target):
			return num.Int(len(str.To(target).Runes())), nil
		case k == "arity" && closure.Is(target):
			return num.Int(closure.To(target).Arity()), nil
		case k == "arity" && builtin.Is(target):
			return num.Int(builtin.To(target).Arity()), nil
		}
	}

	return nil, errsys.New(errsys.InvalidIndex, n.Source(), "cannot index %s with %s", target.Name(), key.Name())
}

func (t *T) loop(n *ast.While, f *frame.T) (cell.I, error) {
	for {
		if err := t.ctx.Err(); err != nil {
			return nil, err
		}

		c, err := t.Eval(n.Cond, f)
		if err != nil {
			return nil, err
		}

		if !boolean.Truthy(c) {
			return unit.Value, nil
		}

		_, err = t.Eval(n.Body, f)
		if err != nil {
			return nil, err
		}
	}
}

func (t *T) pull(n *ast.Pull) (cell.I, error) {
	if t.in == nil {
		return nil, errsys.New(errsys.NoActivePipe, n.Source(), "pull outside of a pipe")
	}

	return t.in.Read(t.ctx)
}

func (t *T) push(n *ast.Push, f *frame.T) (cell.I, error) {
	if t.out == nil {
		return nil, errsys.New(errsys.NoActivePipe, n.Source(), "push outside of a pipe")
	}

	v, err := t.Eval(n.Expr, f)
	if err != nil {
		return nil, err
	}

	err = t.out.Write(t.ctx, v)
	if err != nil {
		return nil, err
	}

	return unit.Value, nil
}

func label(s string) string {
	if s == "" {
		return "lambda"
	}

	return s
}

func native(err error, source *loc.T) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var e *errsys.T
	if errors.As(err, &e) {
		if e.Source == nil {
			e.Source = source
		}

		return e
	}

	return errsys.New(errsys.Native, source, "%v", err)
}

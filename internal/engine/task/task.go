// Released under an MIT license. See LICENSE.

// Package task provides the machinery that evaluates nemo code.
//
// A task is a thread of evaluation. Each side of a pipe runs as its own task
// and each task knows the conduits that push and pull resolve to.
package task

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/conduit"
	"github.com/michaelmacinnis/nemo/internal/common/struct/frame"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

// MaxDepth is the deepest a task's calls may nest.
const MaxDepth = 10000

// T (task) encapsulates a thread of evaluation.
type T struct {
	ctx   context.Context //nolint:containedctx
	depth int
	in    conduit.I // Where pull reads from. Nil outside of a pipe.
	log   *zap.Logger
	out   conduit.I // Where push writes to. Nil outside of a pipe.
}

// New creates a new top-level task. Push and pull fail in a top-level task
// until it evaluates a pipe.
func New(ctx context.Context, log *zap.Logger) *T {
	if log == nil {
		log = zap.NewNop()
	}

	return &T{ctx: ctx, log: log}
}

// Run evaluates n in the frame f. A return that is not inside any call
// ends the task and its operand becomes the task's value.
func (t *T) Run(n ast.Node, f *frame.T) (cell.I, error) {
	v, err := t.Eval(n, f)

	var r *returning
	if errors.As(err, &r) {
		return r.value, nil
	}

	return v, err
}

func (t *T) child(ctx context.Context, in, out conduit.I) *T {
	return &T{
		ctx:   ctx,
		depth: t.depth,
		in:    in,
		log:   t.log,
		out:   out,
	}
}

// returning carries a return value up to the nearest enclosing call.
type returning struct {
	value cell.I
}

func (r *returning) Error() string {
	return "return outside of a function"
}

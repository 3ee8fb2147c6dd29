// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed nemo code.
package engine

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/struct/frame"
	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
	"github.com/michaelmacinnis/nemo/internal/common/type/unit"
	"github.com/michaelmacinnis/nemo/internal/engine/boot"
	"github.com/michaelmacinnis/nemo/internal/engine/commands"
	"github.com/michaelmacinnis/nemo/internal/engine/task"
	"github.com/michaelmacinnis/nemo/internal/reader"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
	"github.com/michaelmacinnis/nemo/internal/system/source"
)

// T (engine) is a facade in front of the machinery for evaluating nemo code.
type T struct {
	args   []string
	global *frame.T
	log    *zap.Logger
	prompt commands.Prompter
	source *source.T
	stdin  io.Reader
	stdout io.Writer
}

type engine = T

// Option configures an engine.
type Option func(e *engine)

// WithArgs sets the values returned by arg. The first is the script name.
func WithArgs(args []string) Option {
	return func(e *engine) {
		e.args = args
	}
}

// WithLogger sets the logger used by the engine and every task it starts.
func WithLogger(l *zap.Logger) Option {
	return func(e *engine) {
		e.log = l
	}
}

// WithPrompter sets how input reads a line. It replaces stdin for input.
func WithPrompter(p commands.Prompter) Option {
	return func(e *engine) {
		e.prompt = p
	}
}

// WithStdin sets where input reads from.
func WithStdin(r io.Reader) Option {
	return func(e *engine) {
		e.stdin = r
	}
}

// WithStdout sets where print and input write to.
func WithStdout(w io.Writer) Option {
	return func(e *engine) {
		e.stdout = w
	}
}

// New creates a new engine with the builtins and prelude loaded.
func New(opts ...Option) (*engine, error) {
	e := &engine{
		global: frame.New(nil),
		log:    zap.NewNop(),
		source: source.New(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}

	for _, o := range opts {
		o(e)
	}

	if e.prompt == nil {
		e.prompt = commands.Lines(e.stdin, e.stdout)
	}

	for k, v := range commands.Functions(e.prompt, e.stdout) {
		e.Define(k, v)
	}

	for k, v := range commands.Arguments(e.args) {
		e.Define(k, v)
	}

	nodes, err := reader.Parse("boot.nm", boot.Script())
	if err != nil {
		return nil, errors.Wrap(err, "boot")
	}

	_, err = e.Run(context.Background(), nodes)
	if err != nil {
		return nil, errors.Wrap(err, "boot")
	}

	return e, nil
}

// Define binds name to v in the global scope.
func (e *engine) Define(name string, v cell.I) {
	e.global.Define(name, v)
}

// Evaluate evaluates a single top-level entry in the global scope.
func (e *engine) Evaluate(ctx context.Context, n ast.Node) (cell.I, error) {
	if u, ok := n.(*ast.Use); ok {
		return unit.Value, e.use(ctx, u)
	}

	return task.New(ctx, e.log).Run(n, e.global)
}

// Lookup returns the global value bound to name.
func (e *engine) Lookup(name string) (cell.I, bool) {
	return e.global.Resolve(name)
}

// Main evaluates nodes in order and then calls main, if it is defined.
// Without a main the value of the last entry is returned.
func (e *engine) Main(ctx context.Context, nodes []ast.Node) (cell.I, error) {
	v, err := e.Run(ctx, nodes)
	if err != nil {
		return nil, err
	}

	if _, ok := e.Lookup("main"); !ok {
		return v, nil
	}

	l := loc.New("main")

	return e.Evaluate(ctx, &ast.Call{
		Base:   ast.At(l),
		Callee: &ast.Name{Base: ast.At(l), Name: "main"},
	})
}

// Run evaluates nodes in order and returns the value of the last one.
func (e *engine) Run(ctx context.Context, nodes []ast.Node) (cell.I, error) {
	var v cell.I = unit.Value

	for _, n := range nodes {
		var err error

		v, err = e.Evaluate(ctx, n)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Script loads the file at path and runs it as a program.
func (e *engine) Script(ctx context.Context, path string) (cell.I, error) {
	nodes, leave, err := e.source.Enter(path)
	if err != nil {
		return nil, err
	}
	defer leave()

	return e.Main(ctx, nodes)
}

func (e *engine) use(ctx context.Context, u *ast.Use) error {
	path := source.Resolve(u.Source().Name, u.Path)

	e.log.Debug("use", zap.String("path", path), zap.Stringer("from", u.Source()))

	nodes, leave, err := e.source.Enter(path)
	if err != nil {
		return err
	}
	defer leave()

	_, err = e.Run(ctx, nodes)

	return err
}

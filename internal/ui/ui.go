// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the nemo language.
package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
	"github.com/michaelmacinnis/nemo/internal/common/type/unit"
	"github.com/michaelmacinnis/nemo/internal/reader"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
	"github.com/michaelmacinnis/nemo/internal/system/history"
	"github.com/michaelmacinnis/nemo/internal/system/interrupt"
)

const (
	continuation = ". "
	prompt       = "> "
)

// Evaluator is the interface for things that want to process parsed entries.
type Evaluator interface {
	Evaluate(ctx context.Context, n ast.Node) (cell.I, error)
}

// T (ui) owns the terminal while nemo is interactive.
type T struct {
	cli *liner.State
	sync.Mutex
}

type ui = T

// New puts the terminal in line editing mode and loads the history.
func New() *ui {
	cli := liner.NewLiner()
	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	return &ui{cli: cli}
}

// Close saves the history and restores the terminal.
func (u *ui) Close() error {
	defer u.cli.Close()

	return history.Save(u.cli.WriteHistory)
}

// Prompt writes p and reads a line with editing. Callers are serialized so
// that input and the session loop never share the terminal.
func (u *ui) Prompt(p string) (string, error) {
	u.Lock()
	defer u.Unlock()

	return u.cli.Prompt(p)
}

// Run reads entries from the terminal and sends them to e until the user
// ends input. Results are written to out and errors to errs.
func (u *ui) Run(ctx context.Context, e Evaluator, out, errs io.Writer) error {
	r := reader.New("nemo")

	for {
		p := prompt
		if r.Pending() {
			p = continuation
		}

		line, err := u.Prompt(p)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)

			return nil
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			u.cli.AppendHistory(line)
		}

		Feed(ctx, e, r, line, out, errs)

		if ctx.Err() != nil {
			return nil
		}
	}
}

// Feed passes line to r and evaluates every entry it completes. An
// interrupt cancels the entry being evaluated but not the session.
func Feed(ctx context.Context, e Evaluator, r *reader.T, line string, out, errs io.Writer) {
	nodes, err := r.Scan(line)
	if err != nil {
		fmt.Fprintln(errs, err)

		return
	}

	for _, n := range nodes {
		v, err := evaluate(ctx, e, n)
		if err != nil {
			fmt.Fprintln(errs, err)

			return
		}

		if v != nil && v != unit.Value {
			fmt.Fprintln(out, literal.String(v))
		}
	}
}

func evaluate(ctx context.Context, e Evaluator, n ast.Node) (cell.I, error) {
	ctx, stop := interrupt.Context(ctx)
	defer stop()

	return e.Evaluate(ctx, n)
}

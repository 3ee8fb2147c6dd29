// Released under an MIT license. See LICENSE.

// Package commands provides the builtins implemented in Go.
//
// Pipe stages like range and map are written in nemo itself. See boot.
package commands

import (
	"context"
	"io"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/type/builtin"
	"github.com/michaelmacinnis/nemo/internal/common/type/num"
)

// Functions returns the native builtins. The input builtin reads with read
// and the print builtin writes to w.
func Functions(read Prompter, w io.Writer) map[string]cell.I {
	t := &terminal{busy: make(chan struct{}, 1), read: read, w: w}

	return table(
		builtin.New("input", 1, t.input),
		builtin.New("match", 2, match),
		builtin.New("number", 1, number),
		builtin.New("print", 1, t.print),
		builtin.New("string", 1, toString),
	)
}

// Arguments returns builtins that expose the script's arguments.
// The first argument is the script name.
func Arguments(args []string) map[string]cell.I {
	return map[string]cell.I{
		"arg": builtin.New("arg", 1, func(_ context.Context, v []cell.I) (cell.I, error) {
			return arg(args, v[0])
		}),
		"args_count": num.Int(len(args)),
	}
}

func table(bs ...*builtin.T) map[string]cell.I {
	m := make(map[string]cell.I, len(bs))
	for _, b := range bs {
		m[b.Label] = b
	}

	return m
}

// Released under an MIT license. See LICENSE.

/*
Nemo is a small expression language built around pipes. Each side of a pipe
runs as its own task: the right side pulls values that the left side pushes.

    range(10) | map(x -> x * x) | filter(x -> x % 2 = 0) | show_pipe()

A producer runs until its first push and then waits for its consumer to
pull. A consumer that stops pulling abandons its producer. Functions are
defined with =>:

    square(x) => x * x

    main() => range(5) | map(square) | reduce(|a, b| -> a + b, 0)

Run nemo with a script, with -c and a command, or with no arguments for an
interactive session.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
	"github.com/michaelmacinnis/nemo/internal/common/type/unit"
	"github.com/michaelmacinnis/nemo/internal/engine"
	"github.com/michaelmacinnis/nemo/internal/reader"
	"github.com/michaelmacinnis/nemo/internal/system/interrupt"
	"github.com/michaelmacinnis/nemo/internal/system/logging"
	"github.com/michaelmacinnis/nemo/internal/system/options"
	"github.com/michaelmacinnis/nemo/internal/system/process"
	"github.com/michaelmacinnis/nemo/internal/ui"
)

const version = "nemo 0.1.0"

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	err := options.Parse(argv, version)
	if err != nil {
		return err
	}

	log := logging.New(stderr, options.Debug())
	defer func() { _ = log.Sync() }()

	opts := []engine.Option{
		engine.WithArgs(options.Args()),
		engine.WithLogger(log),
		engine.WithStdin(stdin),
		engine.WithStdout(stdout),
	}

	if options.Interactive() {
		return interactive(log, opts, stdout, stderr)
	}

	e, err := engine.New(opts...)
	if err != nil {
		return err
	}

	ctx, stop := interrupt.Context(context.Background())
	defer stop()

	if s := options.Script(); s != "" {
		_, err = e.Script(ctx, s)

		return err
	}

	name, text := "-c", options.Command()
	if text == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}

		name, text = "stdin", string(b)
	}

	nodes, err := reader.Parse(name, text)
	if err != nil {
		return err
	}

	v, err := e.Main(ctx, nodes)
	if err != nil {
		return err
	}

	if name == "-c" && v != unit.Value {
		fmt.Fprintln(stdout, literal.String(v))
	}

	return nil
}

// interactive runs a session on the terminal. The input builtin reads
// through the same line editor as the session.
func interactive(log *zap.Logger, opts []engine.Option, stdout, stderr io.Writer) error {
	restore, err := process.BecomeForegroundGroup(int(os.Stdin.Fd()))
	if err != nil {
		return err
	}
	defer restore()

	log.Debug("foreground", zap.Int("group", process.Group()))

	u := ui.New()

	e, err := engine.New(append(opts, engine.WithPrompter(u.Prompt))...)
	if err != nil {
		_ = u.Close()

		return err
	}

	err = u.Run(context.Background(), e, stdout, stderr)
	if cerr := u.Close(); err == nil {
		err = cerr
	}

	return err
}

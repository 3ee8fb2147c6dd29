// Released under an MIT license. See LICENSE.

package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
	"github.com/michaelmacinnis/nemo/internal/common/type/boolean"
	"github.com/michaelmacinnis/nemo/internal/common/type/errsys"
	"github.com/michaelmacinnis/nemo/internal/common/type/num"
	"github.com/michaelmacinnis/nemo/internal/common/type/str"
	"github.com/michaelmacinnis/nemo/internal/common/type/unit"
)

// ErrEndOfInput is returned by input when there is nothing left to read.
var ErrEndOfInput = errors.New("end of input")

// Prompter writes prompt and returns the next line of input without its
// line ending. It returns io.EOF when there is nothing left to read.
type Prompter func(prompt string) (string, error)

// Lines returns a Prompter that writes prompts to w and reads lines from r.
func Lines(r io.Reader, w io.Writer) Prompter {
	br := bufio.NewReader(r)

	return func(prompt string) (string, error) {
		_, err := fmt.Fprint(w, prompt)
		if err != nil {
			return "", err
		}

		line, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}

		return strings.TrimRight(line, "\r\n"), err
	}
}

type line struct {
	err  error
	text string
}

type terminal struct {
	busy    chan struct{}
	pending chan line
	read    Prompter
	w       io.Writer
}

// input waits for a line or for ctx to end. A read that outlives its
// context is kept and its line goes to the next call to input.
func (t *terminal) input(ctx context.Context, v []cell.I) (cell.I, error) {
	select {
	case t.busy <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-t.busy }()

	if t.pending == nil {
		c := make(chan line, 1)
		prompt := literal.Display(v[0])

		go func() {
			s, err := t.read(prompt)
			c <- line{err: err, text: s}
		}()

		t.pending = c
	}

	select {
	case l := <-t.pending:
		t.pending = nil

		if errors.Is(l.err, io.EOF) {
			return nil, ErrEndOfInput
		} else if l.err != nil {
			return nil, l.err
		}

		return str.New(l.text), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (t *terminal) print(_ context.Context, v []cell.I) (cell.I, error) {
	_, err := fmt.Fprintln(t.w, literal.Display(v[0]))
	if err != nil {
		return nil, err
	}

	return unit.Value, nil
}

func arg(args []string, c cell.I) (cell.I, error) {
	if !num.Is(c) {
		return nil, errsys.New(errsys.TypeMismatch, nil, "arg expects a number, got %s", c.Name())
	}

	f := num.To(c).Float()
	if f != math.Trunc(f) || f < 0 || f >= float64(len(args)) {
		return nil, errsys.New(errsys.InvalidIndex, nil, "no argument %s", num.To(c))
	}

	return str.New(args[int(f)]), nil
}

func match(_ context.Context, v []cell.I) (cell.I, error) {
	if !str.Is(v[0]) || !str.Is(v[1]) {
		return nil, errsys.New(errsys.TypeMismatch, nil, "match expects two strings, got %s and %s", v[0].Name(), v[1].Name())
	}

	ok, err := adapted.Match(str.To(v[0]).String(), str.To(v[1]).String())
	if err != nil {
		return nil, err
	}

	return boolean.Bool(ok), nil
}

func number(_ context.Context, v []cell.I) (cell.I, error) {
	if num.Is(v[0]) {
		return v[0], nil
	}

	if !str.Is(v[0]) {
		return nil, errsys.New(errsys.TypeMismatch, nil, "cannot convert %s to a number", v[0].Name())
	}

	s := strings.TrimSpace(str.To(v[0]).String())

	n, err := num.Parse(s)
	if err != nil {
		return nil, errsys.New(errsys.TypeMismatch, nil, "%q is not a number", s)
	}

	return n, nil
}

func toString(_ context.Context, v []cell.I) (cell.I, error) {
	return str.New(literal.Display(v[0])), nil
}

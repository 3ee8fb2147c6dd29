// Released under an MIT license. See LICENSE.

// Package pipe provides nemo's pipe type: a rendezvous between exactly one
// producer and one consumer.
//
// Exactly one side holds the baton. The producer starts with it and runs
// until its first Write parks. After that each Read hands the baton to the
// producer, which runs until it writes another value or finishes and then
// hands the baton back. The producer never runs ahead of the consumer by
// more than the value it is parked on.
package pipe

import (
	"context"
	"errors"
	"sync"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/conduit"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
)

const name = "pipe"

// ErrAbandoned is returned to a producer whose consumer has finished.
var ErrAbandoned = errors.New("pipe abandoned by consumer")

// End is the sentinel delivered to the consumer when the producer finishes.
//
//nolint:gochecknoglobals
var End cell.I = &end{}

type end struct{}

func (e *end) Equal(c cell.I) bool {
	_, ok := c.(*end)

	return ok
}

func (e *end) Literal() string {
	return "finished"
}

func (e *end) Name() string {
	return "finished"
}

type result struct {
	err error
	v   cell.I
}

// T (pipe) connects a producer task to a consumer task.
type T struct {
	done     chan struct{}
	finished bool
	parked   chan struct{}
	primed   bool
	req      chan struct{}
	rsp      chan result

	closed sync.Once
	yield  sync.Once
}

type pipe = T

// New creates a new pipe.
func New() *pipe {
	return &pipe{
		done:   make(chan struct{}),
		parked: make(chan struct{}),
		req:    make(chan struct{}),
		rsp:    make(chan result, 1),
	}
}

// Parked is closed once the producer first writes a value or finishes.
// The consumer must not start before then.
func (p *pipe) Parked() <-chan struct{} {
	return p.parked
}

// Read returns the value the producer is parked on. Every Read after the
// first asks the producer for the next value and waits for it. Once the
// producer has finished, Read returns End without blocking.
// Read must only be called by the consumer.
func (p *pipe) Read(ctx context.Context) (cell.I, error) {
	if p.finished {
		return End, nil
	}

	if p.primed {
		select {
		case p.req <- struct{}{}:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	p.primed = true

	select {
	case r := <-p.rsp:
		if r.err != nil {
			p.finished = true

			return nil, r.err
		}

		if End.Equal(r.v) {
			p.finished = true
		}

		return r.v, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// ReaderClose marks the consumer as finished. A producer parked in Write is
// released with ErrAbandoned. It is safe to call more than once.
func (p *pipe) ReaderClose() {
	p.closed.Do(func() {
		close(p.done)
	})
}

// Write hands v to the consumer and parks until the consumer asks for the
// next value.
func (p *pipe) Write(ctx context.Context, v cell.I) error {
	if err := p.deliver(result{v: v}); err != nil {
		return err
	}

	select {
	case <-p.req:
		return nil
	case <-p.done:
		return ErrAbandoned
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WriterClose delivers End, or err if it is not nil, to the consumer.
// It returns false if the consumer had already finished.
func (p *pipe) WriterClose(err error) bool {
	return p.deliver(result{err: err, v: End}) == nil
}

// The producer only holds the baton when rsp is empty, so the send never
// blocks.
func (p *pipe) deliver(r result) error {
	defer p.yield.Do(func() {
		close(p.parked)
	})

	select {
	case <-p.done:
		return ErrAbandoned
	default:
	}

	p.rsp <- r

	return nil
}

// Equal returns true if the cell c is the same pipe and false otherwise.
func (p *pipe) Equal(c cell.I) bool {
	t, ok := c.(*pipe)

	return ok && p == t
}

// Name returns the name of the pipe type.
func (p *pipe) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pipe

	// The pipe type is a cell.
	_ = cell.I(&t)

	// The pipe type is a conduit.
	_ = conduit.I(&t)

	// The end type has a literal representation.
	_ = literal.I(&end{})
}

// Released under an MIT license. See LICENSE.

package task

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/struct/frame"
	"github.com/michaelmacinnis/nemo/internal/common/type/pipe"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

// pipe runs the left side of n as a producer and the right side as a
// consumer. The consumer runs on the calling goroutine and its value is the
// value of the pipe.
//
// The producer inherits this task's input and the consumer inherits this
// task's output. A stage that calls pull or push is therefore connected to
// the nearest pipe enclosing the task that runs it.
func (t *T) pipe(n *ast.Binary, f *frame.T) (cell.I, error) {
	ctx, cancel := context.WithCancel(t.ctx)
	defer cancel()

	p := pipe.New()

	producer := t.child(ctx, t.in, p)
	consumer := t.child(ctx, p, t.out)

	log := t.log.With(zap.Stringer("pipe", n.Source()))
	log.Debug("started")

	var g errgroup.Group

	g.Go(func() error {
		_, err := producer.Run(n.Left, f)
		if errors.Is(err, pipe.ErrAbandoned) {
			log.Debug("producer abandoned")

			return nil
		}

		p.WriterClose(err)

		log.Debug("producer finished", zap.Error(err))

		// A failed producer fails the pipe even if the consumer never
		// pulled the error.
		return err
	})

	// The producer runs until its first push, or to completion.
	<-p.Parked()

	v, err := consumer.Run(n.Right, f)

	p.ReaderClose()

	if perr := g.Wait(); err == nil {
		err = perr
	}

	log.Debug("finished", zap.Error(err))

	if err != nil {
		return nil, err
	}

	return v, nil
}

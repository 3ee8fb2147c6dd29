// Released under an MIT license. See LICENSE.

// Package conduit defines the interface a task uses to push and pull values.
package conduit

import (
	"context"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
)

// I (conduit) is the interface nemo pipes satisfy.
//
// The read end belongs to the consumer and the write end to the producer.
type I interface {
	Read(ctx context.Context) (cell.I, error)
	ReaderClose()
	Write(ctx context.Context, v cell.I) error
	WriterClose(err error) bool
}

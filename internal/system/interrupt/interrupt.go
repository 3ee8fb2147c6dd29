// Released under an MIT license. See LICENSE.

// Package interrupt ties a context's lifetime to the user interrupting nemo.
package interrupt

import (
	"context"
	"os/signal"
)

// Context returns a copy of parent that is cancelled when nemo receives an
// interrupt. Calling stop releases the signal handler.
func Context(parent context.Context) (ctx context.Context, stop context.CancelFunc) {
	return signal.NotifyContext(parent, signals...)
}

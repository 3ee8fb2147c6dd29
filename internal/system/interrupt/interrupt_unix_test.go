//go:build unix

package interrupt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestInterrupt(t *testing.T) {
	ctx, stop := Context(context.Background())
	defer stop()

	require.NoError(t, unix.Kill(unix.Getpid(), unix.SIGINT))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled")
	}

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestStop(t *testing.T) {
	ctx, stop := Context(context.Background())
	stop()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

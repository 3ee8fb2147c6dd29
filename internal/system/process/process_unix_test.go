//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package process

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestGroup(t *testing.T) {
	assert.Equal(t, unix.Getpgrp(), Group())
}

func TestNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer r.Close()
	defer w.Close()

	fd := int(r.Fd())

	_, err = ForegroundGroup(fd)
	assert.ErrorIs(t, err, unix.ENOTTY)

	assert.Error(t, SetForegroundGroup(fd, Group()))

	before := Group()

	restore, err := BecomeForegroundGroup(fd)
	require.NoError(t, err)
	restore()

	assert.Equal(t, before, Group())
}

// Released under an MIT license. See LICENSE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

// Package process places nemo in the foreground of its terminal.
package process

import (
	"os/signal"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// BecomeForegroundGroup waits until the process group for nemo owns the
// terminal fd, then moves nemo into its own group and gives that group the
// terminal. The returned function hands the terminal back to the group nemo
// started in. Nothing happens if fd is not a terminal.
func BecomeForegroundGroup(fd int) (func(), error) {
	nothing := func() {}

	if _, err := ForegroundGroup(fd); err != nil {
		return nothing, nil //nolint:nilerr
	}

	id := unix.Getpid()

	group, err := unix.Getpgid(id)
	if err != nil {
		return nothing, errors.Wrap(err, "getting process group")
	}

	for {
		fg, err := ForegroundGroup(fd)
		if err != nil {
			return nothing, err
		}

		if fg == group {
			break
		}

		// Stop until the shell that started us brings us forward.
		err = unix.Kill(-group, unix.SIGTTIN)
		if err != nil {
			return nothing, errors.Wrap(err, "waiting for terminal")
		}
	}

	if id == group {
		return nothing, nil
	}

	signal.Ignore(unix.SIGTTOU)

	err = unix.Setpgid(id, id)
	if err != nil {
		return nothing, errors.Wrap(err, "setting process group")
	}

	err = SetForegroundGroup(fd, id)
	if err != nil {
		return nothing, err
	}

	return func() { _ = SetForegroundGroup(fd, group) }, nil
}

// ForegroundGroup returns the foreground process group for the terminal fd.
func ForegroundGroup(fd int) (int, error) {
	g, err := unix.IoctlGetInt(fd, unix.TIOCGPGRP)
	if err != nil {
		return 0, errors.Wrap(err, "getting foreground group")
	}

	return g, nil
}

// Group returns the process group for nemo.
func Group() int {
	g, _ := unix.Getpgid(unix.Getpid())

	return g
}

// SetForegroundGroup gives the terminal fd to the process group g.
func SetForegroundGroup(fd, g int) error {
	return errors.Wrap(unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, g), "setting foreground group")
}

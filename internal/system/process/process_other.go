// Released under an MIT license. See LICENSE.

//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd)

package process

import (
	"os"

	"github.com/pkg/errors"
)

var errUnsupported = errors.New("process groups are not supported on this platform")

// BecomeForegroundGroup does nothing on this platform.
func BecomeForegroundGroup(_ int) (func(), error) {
	return func() {}, nil
}

// ForegroundGroup is not supported on this platform.
func ForegroundGroup(_ int) (int, error) {
	return 0, errUnsupported
}

// Group returns the process ID for nemo on this platform.
func Group() int {
	return os.Getpid()
}

// SetForegroundGroup is not supported on this platform.
func SetForegroundGroup(_, _ int) error {
	return errUnsupported
}

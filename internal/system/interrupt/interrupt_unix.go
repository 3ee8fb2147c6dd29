// Released under an MIT license. See LICENSE.

//go:build unix

package interrupt

import (
	"os"

	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var signals = []os.Signal{unix.SIGINT, unix.SIGTERM}

// Released under an MIT license. See LICENSE.

//go:build !unix

package interrupt

import "os"

//nolint:gochecknoglobals
var signals = []os.Signal{os.Interrupt}

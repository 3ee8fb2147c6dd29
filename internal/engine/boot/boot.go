// Released under an MIT license. See LICENSE.

// Package boot provides the prelude evaluated before any user code.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.nm
var script string //nolint:gochecknoglobals

// Script returns the nemo prelude.
func Script() string {
	return script
}

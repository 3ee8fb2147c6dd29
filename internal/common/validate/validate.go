// Released under an MIT license. See LICENSE.

// Package validate checks arguments passed to closures and builtins.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
	"github.com/michaelmacinnis/nemo/internal/common/type/errsys"
)

// Fixed returns an ArityMismatch error unless exactly n arguments were passed.
func Fixed(l *loc.T, label string, actual []cell.I, n int) error {
	if len(actual) == n {
		return nil
	}

	s := Count(n, "argument", "s")

	return errsys.New(errsys.ArityMismatch, l, "%s expected %s, passed %d", label, s, len(actual))
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

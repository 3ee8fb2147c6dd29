// Released under an MIT license. See LICENSE.

// Package errsys provides nemo's runtime error type.
package errsys

import (
	"fmt"

	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
)

// Kind classifies a runtime error. Each Kind is also an error so that
// callers can write errors.Is(err, errsys.UnboundName).
type Kind int

// Runtime error kinds.
const (
	UnboundName Kind = iota + 1
	ArityMismatch
	NotCallable
	InvalidIndex
	DivisionByZero
	TypeMismatch
	NoActivePipe
	RecursionLimit
	Native
)

//nolint:gochecknoglobals
var kinds = map[Kind]string{
	UnboundName:    "unbound name",
	ArityMismatch:  "arity mismatch",
	NotCallable:    "not callable",
	InvalidIndex:   "invalid index",
	DivisionByZero: "division by zero",
	TypeMismatch:   "type mismatch",
	NoActivePipe:   "no active pipe",
	RecursionLimit: "recursion limit",
	Native:         "builtin failed",
}

func (k Kind) Error() string {
	if s, ok := kinds[k]; ok {
		return s
	}

	return fmt.Sprintf("error %d", int(k))
}

// T (errsys) is a runtime error raised while evaluating nemo code.
type T struct {
	Kind   Kind
	Msg    string
	Source *loc.T
}

type errsys = T

// New creates a new errsys of kind k at the location l.
func New(k Kind, l *loc.T, format string, args ...interface{}) *errsys {
	return &errsys{
		Kind:   k,
		Msg:    fmt.Sprintf(format, args...),
		Source: l,
	}
}

// Error returns the text of the errsys e.
func (e *errsys) Error() string {
	s := e.Kind.Error() + ": " + e.Msg
	if e.Source != nil {
		s = e.Source.String() + ": " + s
	}

	return s
}

// Is returns true if target is this error's Kind.
func (e *errsys) Is(target error) bool {
	k, ok := target.(Kind)

	return ok && k == e.Kind
}

// Released under an MIT license. See LICENSE.

// Package reader encapsulates the nemo lexer and parser.
package reader

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/nemo/internal/reader/ast"
	"github.com/michaelmacinnis/nemo/internal/reader/lexer"
	"github.com/michaelmacinnis/nemo/internal/reader/parser"
)

// T (reader) accumulates lines until they form complete entries.
type T struct {
	buffer strings.Builder
	name   string
}

type reader = T

// New creates a new reader for name.
func New(name string) *reader {
	return &reader{name: name}
}

// Parse parses all of text. The name is used in error locations.
func Parse(name, text string) ([]ast.Node, error) {
	l := lexer.New(name)

	l.Scan(text)

	var ns []ast.Node

	err := parser.New(l.Token).Parse(func(n ast.Node) {
		ns = append(ns, n)
	})
	if err != nil {
		return nil, err
	}

	return ns, nil
}

// Pending returns true if the reader holds the start of an incomplete entry.
func (r *reader) Pending() bool {
	return r.buffer.Len() > 0
}

// Reset discards any incomplete entry.
func (r *reader) Reset() {
	r.buffer.Reset()
}

// Scan adds line to the current entry. It returns the parsed nodes once
// the entry is complete. While more input is needed it returns nil and
// Pending returns true. A syntax error discards the entry.
func (r *reader) Scan(line string) ([]ast.Node, error) {
	r.buffer.WriteString(line)
	r.buffer.WriteString("\n")

	ns, err := Parse(r.name, r.buffer.String())
	if errors.Is(err, parser.ErrIncomplete) {
		return nil, nil
	}

	r.buffer.Reset()

	return ns, err
}

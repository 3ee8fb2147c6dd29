// Released under an MIT license. See LICENSE.

// Package token is shared by the nemo lexer and parser.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
)

// Class is a token's type.
// Single character punctuation uses the character itself as its class.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// Token classes.
const (
	Error Class = iota

	Arrow Class = unicode.MaxRune + iota
	Assign
	Define
	GreaterEqual
	LessEqual
	Name
	NotEqual
	Number
	String
	Unterminated

	// Keywords.
	And
	Do
	Else
	False
	Finished
	If
	Or
	Pull
	Push
	Return
	Then
	True
	Use
	While
)

//nolint:gochecknoglobals
var names = map[Class]string{
	Error:        "Error",
	Arrow:        "'->'",
	Assign:       "':='",
	Define:       "'=>'",
	GreaterEqual: "'>='",
	LessEqual:    "'<='",
	Name:         "Name",
	NotEqual:     "'!='",
	Number:       "Number",
	String:       "String",
	Unterminated: "Unterminated",
	And:          "'and'",
	Do:           "'do'",
	Else:         "'else'",
	False:        "'false'",
	Finished:     "'finished'",
	If:           "'if'",
	Or:           "'or'",
	Pull:         "'pull'",
	Push:         "'push'",
	Return:       "'return'",
	Then:         "'then'",
	True:         "'true'",
	Use:          "'use'",
	While:        "'while'",
}

// Keywords maps reserved words to their class.
//
//nolint:gochecknoglobals
var Keywords = map[string]Class{
	"and":      And,
	"do":       Do,
	"else":     Else,
	"false":    False,
	"finished": Finished,
	"if":       If,
	"or":       Or,
	"pull":     Pull,
	"push":     Push,
	"return":   Return,
	"then":     Then,
	"true":     True,
	"use":      Use,
	"while":    While,
}

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	if s, ok := names[c]; ok {
		return s
	}

	if c == '\n' {
		return "newline"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	s := t.source

	return &s
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}

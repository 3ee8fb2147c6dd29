// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the nemo language.
//
// The nemo lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
	"github.com/michaelmacinnis/nemo/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string     // Buffer being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	next   loc.T      // Location of the byte at index.
	source loc.T      // Location of the current token's first byte.
	state  action     // Current action.
	tokens []*token.T // Tokens scanned but not yet returned.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{next: *loc.New(label)}

	l.source = l.next

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, text is appended to it.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.next.Line++
		l.next.Char = 1
	} else {
		l.next.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) follows(c token.Class) bool {
	r, w := l.peek()
	if r != c {
		return false
	}

	l.accept(r, w)

	return true
}

func (l *T) consume() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source = l.next
	l.first = l.index
}

// T states.

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case ' ', '\t', '\r':
			l.accept(r, w)
			l.skip()
		case '#':
			return skipComment
		default:
			return lexToken
		}
	}
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || r == '\n' {
			break
		}

		l.accept(r, w)
	}

	l.skip()

	return skipWhitespace
}

func lexToken(l *T) action {
	r := l.consume()

	switch {
	case r == '"':
		return lexString
	case isDigit(r):
		return lexNumber
	case isNameStart(r):
		return lexName
	}

	switch r {
	case '-':
		if l.follows('>') {
			l.emit(token.Arrow, l.Text())
		} else {
			l.emit(r, l.Text())
		}
	case ':':
		if l.follows('=') {
			l.emit(token.Assign, l.Text())
		} else {
			l.emit(token.Error, "unexpected ':'")
		}
	case '=':
		if l.follows('>') {
			l.emit(token.Define, l.Text())
		} else {
			l.emit(r, l.Text())
		}
	case '!':
		if l.follows('=') {
			l.emit(token.NotEqual, l.Text())
		} else {
			l.emit(token.Error, "unexpected '!'")
		}
	case '<':
		if l.follows('=') {
			l.emit(token.LessEqual, l.Text())
		} else {
			l.emit(r, l.Text())
		}
	case '>':
		if l.follows('=') {
			l.emit(token.GreaterEqual, l.Text())
		} else {
			l.emit(r, l.Text())
		}
	case '\n', '(', ')', '{', '}', '[', ']', ',', ';', '.', '|', '+', '*', '/', '%':
		l.emit(r, l.Text())
	default:
		l.emit(token.Error, "unexpected "+strconv.QuoteRune(rune(r)))
	}

	return skipWhitespace
}

func lexName(l *T) action {
	for {
		r, w := l.peek()
		if !isNameStart(r) && !isDigit(r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()

	if c, ok := token.Keywords[s]; ok {
		l.emit(c, s)
	} else {
		l.emit(token.Name, s)
	}

	return skipWhitespace
}

func lexNumber(l *T) action {
	digits(l)

	if r, w := l.peek(); r == '.' && l.index+w < len(l.bytes) && isDigit(token.Class(l.bytes[l.index+w])) {
		l.accept(r, w)
		digits(l)
	}

	l.emit(token.Number, l.Text())

	return skipWhitespace
}

func lexString(l *T) action {
	for {
		switch l.consume() {
		case eof:
			l.emit(token.Unterminated, l.Text())

			return nil
		case '\\':
			if r, w := l.peek(); r != eof {
				l.accept(r, w)
			}
		case '"':
			l.emit(token.String, l.Text())

			return skipWhitespace
		}
	}
}

func digits(l *T) {
	for {
		r, w := l.peek()
		if !isDigit(r) {
			return
		}

		l.accept(r, w)
	}
}

func isDigit(r token.Class) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r token.Class) bool {
	return r == '_' || (r >= 0 && unicode.IsLetter(rune(r)))
}

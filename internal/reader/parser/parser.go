// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the nemo language.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
	"github.com/michaelmacinnis/nemo/internal/common/struct/token"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

// ErrIncomplete matches syntax errors caused by running out of input.
var ErrIncomplete = errors.New("unexpected end of input")

// Error is a syntax error.
type Error struct {
	Msg    string
	Source *loc.T

	incomplete bool
}

func (e *Error) Error() string {
	return e.Source.String() + ": " + e.Msg
}

// Is returns true for ErrIncomplete if parsing stopped at the end of input.
func (e *Error) Is(target error) bool {
	return e.incomplete && target == ErrIncomplete //nolint:errorlint
}

// T holds the state of the parser.
type T struct {
	ahead []*token.T      // Lookahead.
	item  func() *token.T // Function to call to get another token.
	last  *token.T        // Most recently consumed token.
}

// New creates a new parser that reads tokens from item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes tokens and emits top-level nodes until there are no more
// tokens or a syntax error occurs.
func (p *T) Parse(emit func(ast.Node)) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *Error:
			err = r
		case error:
			err = r
		default:
			err = fmt.Errorf("%v", r)
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n', ';') {
			p.consume()

			continue
		}

		emit(p.entry())

		if t := p.peek(); t != nil && !t.Is('\n', ';') {
			p.fail(t, "expected newline or ';'")
		}
	}

	return nil
}

func (p *T) consume() *token.T {
	if len(p.ahead) == 0 && p.peek() == nil {
		p.incomplete()
	}

	t := p.ahead[0]
	p.ahead = p.ahead[1:]
	p.last = t

	return t
}

// continues consumes newlines if the first token after them is c.
func (p *T) continues(c token.Class) bool {
	i := 0
	for p.lookahead(i).Is('\n') {
		i++
	}

	if !p.lookahead(i).Is(c) {
		return false
	}

	p.ahead = p.ahead[i:]

	return true
}

func (p *T) expect(c token.Class) *token.T {
	t := p.peek()
	if !t.Is(c) {
		p.unexpected(t, "expected "+c.String())
	}

	return p.consume()
}

func (p *T) fail(t *token.T, msg string) {
	panic(&Error{Msg: msg, Source: t.Source()})
}

func (p *T) incomplete() {
	l := loc.New("input")
	if p.last != nil {
		l = p.last.Source()
	}

	panic(&Error{Msg: ErrIncomplete.Error(), Source: l, incomplete: true})
}

func (p *T) lookahead(n int) *token.T {
	for len(p.ahead) <= n {
		t := p.item()
		if t == nil {
			return nil
		}

		p.ahead = append(p.ahead, t)
	}

	return p.ahead[n]
}

func (p *T) peek() *token.T {
	return p.lookahead(0)
}

func (p *T) skipNewlines() {
	for p.peek().Is('\n') {
		p.consume()
	}
}

func (p *T) unexpected(t *token.T, msg string) {
	switch {
	case t == nil, t.Is(token.Unterminated):
		p.incomplete()
	case t.Is(token.Error):
		p.fail(t, t.Value())
	case t.Is('\n'):
		p.fail(t, msg+", got newline")
	default:
		p.fail(t, msg+", got '"+t.Value()+"'")
	}
}

// Grammar rules.

// <entry> ::= 'use' String | <definition> | <expression> .
func (p *T) entry() ast.Node {
	t := p.peek()

	if t.Is(token.Use) {
		p.consume()

		s := p.expect(token.String)

		return &ast.Use{Base: at(t), Path: p.unquote(s)}
	}

	if p.isDefinition() {
		return p.definition()
	}

	return p.expression()
}

// <definition> ::= Name '(' <params> ')' '=>' <expression> .
func (p *T) definition() ast.Node {
	t := p.consume()

	p.expect('(')
	params := p.params(')')
	p.expect(')')
	p.expect(token.Define)
	p.skipNewlines()

	return &ast.Definition{
		Base:   at(t),
		Name:   t.Value(),
		Params: params,
		Body:   p.expression(),
	}
}

// <expression> ::= 'push' <expression>
//
//	| 'return' <expression>?
//	| 'if' <expression> 'then' <expression> ('else' <expression>)?
//	| 'while' <expression> 'do' <expression>
//	| Name ':=' <expression>
//	| <lambda>
//	| <pipeline> .
func (p *T) expression() ast.Node {
	t := p.peek()

	switch {
	case t == nil:
		p.incomplete()
	case t.Is(token.Push):
		p.consume()

		return &ast.Push{Base: at(t), Expr: p.expression()}
	case t.Is(token.Return):
		p.consume()

		if p.ends() {
			return &ast.Return{Base: at(t)}
		}

		return &ast.Return{Base: at(t), Expr: p.expression()}
	case t.Is(token.If):
		return p.conditional()
	case t.Is(token.While):
		return p.loop()
	case t.Is(token.Name) && p.lookahead(1).Is(token.Assign):
		p.consume()
		p.consume()
		p.skipNewlines()

		return &ast.Assignment{Base: at(t), Name: t.Value(), Expr: p.expression()}
	case t.Is(token.Name) && p.lookahead(1).Is(token.Arrow):
		p.consume()
		p.consume()
		p.skipNewlines()

		return &ast.Lambda{Base: at(t), Params: []string{t.Value()}, Body: p.expression()}
	case t.Is('|'):
		p.consume()

		params := p.params('|')
		p.expect('|')

		return p.lambda(t, params)
	case t.Is('(') && p.isParenLambda():
		p.consume()

		params := p.params(')')
		p.expect(')')

		return p.lambda(t, params)
	}

	return p.pipeline()
}

func (p *T) conditional() ast.Node {
	t := p.consume()

	n := &ast.If{Base: at(t), Cond: p.expression()}

	p.continues(token.Then)
	p.expect(token.Then)
	p.skipNewlines()

	n.Then = p.expression()

	if p.continues(token.Else) {
		p.consume()
		p.skipNewlines()

		n.Else = p.expression()
	}

	return n
}

func (p *T) lambda(t *token.T, params []string) ast.Node {
	p.expect(token.Arrow)
	p.skipNewlines()

	return &ast.Lambda{Base: at(t), Params: params, Body: p.expression()}
}

func (p *T) loop() ast.Node {
	t := p.consume()

	n := &ast.While{Base: at(t), Cond: p.expression()}

	p.continues(token.Do)
	p.expect(token.Do)
	p.skipNewlines()

	n.Body = p.expression()

	return n
}

// <pipeline> ::= <disjunction> ('|' <disjunction>)* .
func (p *T) pipeline() ast.Node {
	n := p.disjunction()

	for p.continues('|') {
		t := p.consume()
		p.skipNewlines()

		n = &ast.Binary{Base: at(t), Op: ast.Pipe, Left: n, Right: p.disjunction()}
	}

	return n
}

// <disjunction> ::= <conjunction> ('or' <conjunction>)* .
func (p *T) disjunction() ast.Node {
	n := p.conjunction()

	for p.peek().Is(token.Or) {
		t := p.consume()
		p.skipNewlines()

		n = &ast.Binary{Base: at(t), Op: ast.Or, Left: n, Right: p.conjunction()}
	}

	return n
}

// <conjunction> ::= <comparison> ('and' <comparison>)* .
func (p *T) conjunction() ast.Node {
	n := p.comparison()

	for p.peek().Is(token.And) {
		t := p.consume()
		p.skipNewlines()

		n = &ast.Binary{Base: at(t), Op: ast.And, Left: n, Right: p.comparison()}
	}

	return n
}

// <comparison> ::= <sum> (('=' | '!=' | '<' | '>' | '<=' | '>=') <sum>)? .
func (p *T) comparison() ast.Node {
	n := p.sum()

	t := p.peek()
	if t == nil {
		return n
	}

	op, ok := map[token.Class]ast.Op{
		'=':                ast.Eq,
		token.NotEqual:     ast.Ne,
		'<':                ast.Lt,
		'>':                ast.Gt,
		token.LessEqual:    ast.Le,
		token.GreaterEqual: ast.Ge,
	}[t.Class()]
	if !ok {
		return n
	}

	p.consume()
	p.skipNewlines()

	return &ast.Binary{Base: at(t), Op: op, Left: n, Right: p.sum()}
}

// <sum> ::= <term> (('+' | '-') <term>)* .
func (p *T) sum() ast.Node {
	n := p.term()

	for {
		t := p.peek()

		var op ast.Op

		switch {
		case t.Is('+'):
			op = ast.Add
		case t.Is('-'):
			op = ast.Sub
		default:
			return n
		}

		p.consume()
		p.skipNewlines()

		n = &ast.Binary{Base: at(t), Op: op, Left: n, Right: p.term()}
	}
}

// <term> ::= <unary> (('*' | '/' | '%') <unary>)* .
func (p *T) term() ast.Node {
	n := p.unary()

	for {
		t := p.peek()

		var op ast.Op

		switch {
		case t.Is('*'):
			op = ast.Mul
		case t.Is('/'):
			op = ast.Div
		case t.Is('%'):
			op = ast.Mod
		default:
			return n
		}

		p.consume()
		p.skipNewlines()

		n = &ast.Binary{Base: at(t), Op: op, Left: n, Right: p.unary()}
	}
}

// <unary> ::= '-' <unary> | <postfix> .
func (p *T) unary() ast.Node {
	t := p.peek()
	if !t.Is('-') {
		return p.postfix()
	}

	p.consume()

	zero := &ast.Number{Base: at(t)}

	return &ast.Binary{Base: at(t), Op: ast.Sub, Left: zero, Right: p.unary()}
}

// <postfix> ::= <primary> ('(' <args> ')' | '[' <expression> ']' | '.' Name)* .
func (p *T) postfix() ast.Node {
	n := p.primary()

	for {
		t := p.peek()

		switch {
		case t.Is('('):
			n = &ast.Call{Base: at(t), Callee: n, Args: p.args()}
		case t.Is('['):
			p.consume()
			p.skipNewlines()

			k := p.expression()

			p.skipNewlines()
			p.expect(']')

			n = &ast.Index{Base: at(t), Target: n, Key: k}
		case t.Is('.'):
			p.consume()

			s := p.expect(token.Name)
			k := &ast.Str{Base: at(s), Value: s.Value()}

			n = &ast.Index{Base: at(t), Target: n, Key: k}
		default:
			return n
		}
	}
}

func (p *T) args() []ast.Node {
	p.expect('(')
	p.skipNewlines()

	var args []ast.Node

	for !p.peek().Is(')') {
		args = append(args, p.expression())

		p.skipNewlines()

		if !p.peek().Is(',') {
			break
		}

		p.consume()
		p.skipNewlines()
	}

	p.expect(')')

	return args
}

func (p *T) primary() ast.Node {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		f, err := strconv.ParseFloat(t.Value(), 64)
		if err != nil {
			p.fail(t, "invalid number '"+t.Value()+"'")
		}

		return &ast.Number{Base: at(t), Value: f}
	case t.Is(token.String):
		p.consume()

		return &ast.Str{Base: at(t), Value: p.unquote(t)}
	case t.Is(token.True, token.False):
		p.consume()

		return &ast.Bool{Base: at(t), Value: t.Is(token.True)}
	case t.Is(token.Name):
		p.consume()

		return &ast.Name{Base: at(t), Name: t.Value()}
	case t.Is(token.Pull):
		p.consume()

		return &ast.Pull{Base: at(t)}
	case t.Is(token.Finished):
		p.consume()

		return &ast.FinishedPipe{Base: at(t)}
	case t.Is('('):
		p.consume()
		p.skipNewlines()

		n := p.expression()

		p.skipNewlines()
		p.expect(')')

		return n
	case t.Is('{'):
		return p.block()
	}

	p.unexpected(t, "expected expression")

	return nil
}

// <block> ::= '{' (<expression> (<separator> <expression>)*)? '}' .
func (p *T) block() ast.Node {
	t := p.consume()

	n := &ast.Block{Base: at(t)}

	for {
		for p.peek().Is('\n', ';') {
			p.consume()
		}

		if p.peek().Is('}') {
			break
		}

		n.Exprs = append(n.Exprs, p.expression())

		if s := p.peek(); !s.Is('\n', ';', '}') {
			p.unexpected(s, "expected newline, ';' or '}'")
		}
	}

	p.consume()

	return n
}

// ends returns true if nothing can follow a bare return.
func (p *T) ends() bool {
	t := p.peek()

	return t == nil || t.Is('\n', ';', '}', ')', ']', ',', token.Else, token.Then, token.Do)
}

func (p *T) isDefinition() bool {
	if !p.peek().Is(token.Name) || !p.lookahead(1).Is('(') {
		return false
	}

	i := p.names(2, ')')

	return p.lookahead(i).Is(')') && p.lookahead(i+1).Is(token.Define)
}

func (p *T) isParenLambda() bool {
	i := p.names(1, ')')

	return p.lookahead(i).Is(')') && p.lookahead(i+1).Is(token.Arrow)
}

// names skips a comma separated list of names starting at lookahead i and
// returns the index of the first token after it.
func (p *T) names(i int, end token.Class) int {
	if p.lookahead(i).Is(end) {
		return i
	}

	for p.lookahead(i).Is(token.Name) {
		i++

		if !p.lookahead(i).Is(',') {
			break
		}

		i++
	}

	return i
}

func (p *T) params(end token.Class) []string {
	params := []string{}

	if p.peek().Is(end) {
		return params
	}

	for {
		params = append(params, p.expect(token.Name).Value())

		if !p.peek().Is(',') {
			return params
		}

		p.consume()
	}
}

func (p *T) unquote(t *token.T) string {
	v := t.Value()

	s, err := adapted.ActualBytes(v[1 : len(v)-1])
	if err != nil {
		p.fail(t, "invalid string "+v)
	}

	return s
}

func at(t *token.T) ast.Base {
	return ast.At(t.Source())
}

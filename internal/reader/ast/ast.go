// Released under an MIT license. See LICENSE.

// Package ast defines the syntax tree produced by the nemo parser.
//
// Nodes are immutable once built. Each node prints as source text that the
// parser reads back as an equivalent node.
package ast

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
)

// Node is implemented by every expression and top-level item.
type Node interface {
	Source() *loc.T
	String() string
}

// Base records where a node came from.
type Base struct {
	Loc *loc.T
}

// At returns a Base for the location l.
func At(l *loc.T) Base {
	return Base{Loc: l}
}

// Source returns the node's location.
func (b Base) Source() *loc.T {
	return b.Loc
}

// Op is a binary operator.
type Op int

// Binary operators.
const (
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Ne
	Lt
	Gt
	Le
	Ge
	And
	Or
	Pipe
)

//nolint:gochecknoglobals
var ops = [...]string{
	Add:  "+",
	Sub:  "-",
	Mul:  "*",
	Div:  "/",
	Mod:  "%",
	Eq:   "=",
	Ne:   "!=",
	Lt:   "<",
	Gt:   ">",
	Le:   "<=",
	Ge:   ">=",
	And:  "and",
	Or:   "or",
	Pipe: "|",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(ops) {
		return "Op(" + strconv.Itoa(int(o)) + ")"
	}

	return ops[o]
}

type (
	// Number is a numeric literal.
	Number struct {
		Base
		Value float64
	}

	// Str is a string literal.
	Str struct {
		Base
		Value string
	}

	// Bool is true or false.
	Bool struct {
		Base
		Value bool
	}

	// Name is a variable reference.
	Name struct {
		Base
		Name string
	}

	// Assignment binds or rebinds Name.
	Assignment struct {
		Base
		Name string
		Expr Node
	}

	// Push sends a value downstream.
	Push struct {
		Base
		Expr Node
	}

	// Pull receives a value from upstream.
	Pull struct {
		Base
	}

	// Return leaves the nearest enclosing call. A nil Expr returns unit.
	Return struct {
		Base
		Expr Node
	}

	// Binary applies Op to Left and Right.
	Binary struct {
		Base
		Op    Op
		Left  Node
		Right Node
	}

	// If evaluates exactly one of Then and Else. A nil Else yields unit.
	If struct {
		Base
		Cond Node
		Then Node
		Else Node
	}

	// While repeats Body as long as Cond is truthy.
	While struct {
		Base
		Cond Node
		Body Node
	}

	// Block evaluates Exprs in a new scope.
	Block struct {
		Base
		Exprs []Node
	}

	// Call applies Callee to Args.
	Call struct {
		Base
		Callee Node
		Args   []Node
	}

	// Lambda is an anonymous function.
	Lambda struct {
		Base
		Params []string
		Body   Node
	}

	// Index looks up Key in Target. Attribute syntax uses a Str key.
	Index struct {
		Base
		Target Node
		Key    Node
	}

	// FinishedPipe is the sentinel an exhausted producer delivers.
	FinishedPipe struct {
		Base
	}

	// Definition is a named top-level function.
	Definition struct {
		Base
		Name   string
		Params []string
		Body   Node
	}

	// Use loads another source file into the global scope.
	Use struct {
		Base
		Path string
	}
)

func (n *Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

func (n *Str) String() string {
	return strconv.Quote(n.Value)
}

func (n *Bool) String() string {
	return strconv.FormatBool(n.Value)
}

func (n *Name) String() string {
	return n.Name
}

func (n *Assignment) String() string {
	return "(" + n.Name + " := " + n.Expr.String() + ")"
}

func (n *Push) String() string {
	return "(push " + n.Expr.String() + ")"
}

func (n *Pull) String() string {
	return "pull"
}

func (n *Return) String() string {
	if n.Expr == nil {
		return "(return)"
	}

	return "(return " + n.Expr.String() + ")"
}

func (n *Binary) String() string {
	return "(" + n.Left.String() + " " + n.Op.String() + " " + n.Right.String() + ")"
}

func (n *If) String() string {
	s := "(if " + n.Cond.String() + " then " + n.Then.String()
	if n.Else != nil {
		s += " else " + n.Else.String()
	}

	return s + ")"
}

func (n *While) String() string {
	return "(while " + n.Cond.String() + " do " + n.Body.String() + ")"
}

func (n *Block) String() string {
	return "{" + join(n.Exprs, "; ") + "}"
}

func (n *Call) String() string {
	return n.Callee.String() + "(" + join(n.Args, ", ") + ")"
}

func (n *Lambda) String() string {
	if len(n.Params) == 0 {
		return "(() -> " + n.Body.String() + ")"
	}

	return "(|" + strings.Join(n.Params, ", ") + "| -> " + n.Body.String() + ")"
}

func (n *Index) String() string {
	return n.Target.String() + "[" + n.Key.String() + "]"
}

func (n *FinishedPipe) String() string {
	return "finished"
}

func (n *Definition) String() string {
	return n.Name + "(" + strings.Join(n.Params, ", ") + ") => " + n.Body.String()
}

func (n *Use) String() string {
	return "use " + strconv.Quote(n.Path)
}

func join(ns []Node, sep string) string {
	ss := make([]string, len(ns))
	for i, n := range ns {
		ss[i] = n.String()
	}

	return strings.Join(ss, sep)
}

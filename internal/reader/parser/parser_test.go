package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/nemo/internal/engine/boot"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
	"github.com/michaelmacinnis/nemo/internal/reader/lexer"
)

func parse(t *testing.T, s string) []ast.Node {
	t.Helper()

	l := lexer.New("test")

	l.Scan(s)

	var ns []ast.Node

	err := New(l.Token).Parse(func(n ast.Node) {
		ns = append(ns, n)
	})
	if err != nil {
		t.Fatalf("Parsing %q: %v", s, err)
	}

	return ns
}

func render(ns []ast.Node) string {
	ss := make([]string, len(ns))
	for i, n := range ns {
		ss[i] = n.String()
	}

	return strings.Join(ss, "\n") + "\n"
}

func check(t *testing.T, s string) {
	t.Helper()

	p := render(parse(t, s))
	r := render(parse(t, p))

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func expect(t *testing.T, s, e string) {
	t.Helper()

	a := render(parse(t, s))
	if a != e+"\n" {
		t.Fatalf("Parsing %q: expected %s; got %s", s, e, a)
	}
}

func TestBoot(t *testing.T) {
	check(t, boot.Script())
}

func TestDefinition(t *testing.T) {
	expect(t, "add(x, y) => x + y", "add(x, y) => (x + y)")
	expect(t, "main() => {\n  print(1)\n}", "main() => {print(1)}")
}

func TestLambdas(t *testing.T) {
	expect(t, "x -> x + 1", "(|x| -> (x + 1))")
	expect(t, "|acc, x| -> acc + x", "(|acc, x| -> (acc + x))")
	expect(t, "() -> x", "(() -> x)")
	expect(t, "(a, b) -> a", "(|a, b| -> a)")
	check(t, "f := (() -> x)\nf()\n")
}

func TestPipeIsLeftAssociative(t *testing.T) {
	ns := parse(t, "range(10) | map(f) | show_pipe()")

	b, ok := ns[0].(*ast.Binary)
	if !ok || b.Op != ast.Pipe {
		t.Fatalf("Expected pipe; got %s", ns[0])
	}

	l, ok := b.Left.(*ast.Binary)
	if !ok || l.Op != ast.Pipe {
		t.Fatalf("Expected nested pipe on the left; got %s", b.Left)
	}
}

func TestPipeContinuation(t *testing.T) {
	expect(t, "range(3)\n  | show_pipe()", "(range(3) | show_pipe())")
}

func TestPrecedence(t *testing.T) {
	expect(t, "1 + 2 * 3", "(1 + (2 * 3))")
	expect(t, "1 - 2 - 3", "((1 - 2) - 3)")
	expect(t, "a < b and c or d", "(((a < b) and c) or d)")
	expect(t, "-x * 2", "((0 - x) * 2)")
	expect(t, "a | b or c", "(a | (b or c))")
}

func TestPostfix(t *testing.T) {
	expect(t, `"abc"[1]`, `"abc"[1]`)
	expect(t, "s.length", `s["length"]`)
	expect(t, "f(1)(2).arity", `f(1)(2)["arity"]`)
}

func TestStatements(t *testing.T) {
	expect(t, "x := 1; push x; pull", "(x := 1)\n(push x)\npull")
	expect(t, "if c then 1 else 2", "(if c then 1 else 2)")
	expect(t, "if c then 1", "(if c then 1)")
	expect(t, "while i < n do i := i + 1", "(while (i < n) do (i := (i + 1)))")
	expect(t, "{}", "{}")
	expect(t, "{ return }", "{(return)}")
	expect(t, "v = finished", "(v = finished)")
}

func TestElseOnNextLine(t *testing.T) {
	expect(t, "{\n  if c\n  then 1\n  else 2\n}", "{(if c then 1 else 2)}")
}

func TestStrings(t *testing.T) {
	ns := parse(t, `"a\tb\"c\""`)

	s, ok := ns[0].(*ast.Str)
	if !ok || s.Value != "a\tb\"c\"" {
		t.Fatalf("Expected decoded string; got %s", ns[0])
	}

	check(t, `print("tab\there")`)
}

func TestUse(t *testing.T) {
	expect(t, `use "lib.nm"`, `use "lib.nm"`)
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{
		"1 +",
		"f(",
		"{ x := 1",
		`"abc`,
		"if c then",
		"add(x) =>",
	} {
		l := lexer.New("test")
		l.Scan(s)

		err := New(l.Token).Parse(func(ast.Node) {})
		if !errors.Is(err, ErrIncomplete) {
			t.Fatalf("Parsing %q: expected incomplete; got %v", s, err)
		}
	}
}

func TestSyntaxError(t *testing.T) {
	for _, s := range []string{
		"1 + )",
		"x y",
		"@",
		"{ 1 2 }",
	} {
		l := lexer.New("test")
		l.Scan(s)

		err := New(l.Token).Parse(func(ast.Node) {})
		if err == nil || errors.Is(err, ErrIncomplete) {
			t.Fatalf("Parsing %q: expected syntax error; got %v", s, err)
		}
	}
}

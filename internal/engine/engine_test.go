package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/interface/literal"
	"github.com/michaelmacinnis/nemo/internal/common/type/errsys"
	"github.com/michaelmacinnis/nemo/internal/reader"
	"github.com/michaelmacinnis/nemo/internal/system/source"
)

func setup(t *testing.T, opts ...Option) (*T, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}

	opts = append([]Option{
		WithLogger(zaptest.NewLogger(t)),
		WithStdin(strings.NewReader("")),
		WithStdout(out),
	}, opts...)

	e, err := New(opts...)
	require.NoError(t, err)

	return e, out
}

func program(t *testing.T, e *T, text string) (cell.I, error) {
	t.Helper()

	nodes, err := reader.Parse("test.nm", text)
	require.NoError(t, err)

	return e.Main(context.Background(), nodes)
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestShowPipeRange(t *testing.T) {
	e, out := setup(t)

	_, err := program(t, e, "main() => range(4) | show_pipe()\n")
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n3\n", out.String())
}

func TestMainValue(t *testing.T) {
	e, _ := setup(t)

	v, err := program(t, e, "main() => range(11) | reduce(|acc, x| -> acc + x, 0)\n")
	require.NoError(t, err)
	assert.Equal(t, "55", literal.String(v))
}

func TestWithoutMain(t *testing.T) {
	e, _ := setup(t)

	v, err := program(t, e, "x := 1\nf := (() -> x)\nx := 2\nf()\n")
	require.NoError(t, err)
	assert.Equal(t, "2", literal.String(v))
}

func TestErrors(t *testing.T) {
	e, _ := setup(t)

	_, err := program(t, e, "main() => f(1)\nf(a, b) => a\n")
	assert.ErrorIs(t, err, errsys.ArityMismatch)

	_, err = program(t, e, "main() => nope\n")
	assert.ErrorIs(t, err, errsys.UnboundName)

	var es *errsys.T
	require.ErrorAs(t, err, &es)
	assert.Equal(t, "test.nm", es.Source.Name)
}

func TestInput(t *testing.T) {
	e, out := setup(t, WithStdin(strings.NewReader("world\n")))

	_, err := program(t, e, `main() => print("hello, " + input("name? "))`+"\n")
	require.NoError(t, err)
	assert.Equal(t, "name? hello, world\n", out.String())
}

func TestPrompter(t *testing.T) {
	var prompts []string

	e, out := setup(t,
		WithStdin(strings.NewReader("ignored\n")),
		WithPrompter(func(p string) (string, error) {
			prompts = append(prompts, p)

			return "terminal", nil
		}),
	)

	_, err := program(t, e, `main() => print(input("name? "))`+"\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"name? "}, prompts)
	assert.Equal(t, "terminal\n", out.String())
}

func TestArgs(t *testing.T) {
	e, _ := setup(t, WithArgs([]string{"script.nm", "a", "b"}))

	v, err := program(t, e, "args_count + 0\n")
	require.NoError(t, err)
	assert.Equal(t, "3", literal.String(v))

	v, err = program(t, e, "arg(2)\n")
	require.NoError(t, err)
	assert.Equal(t, `"b"`, literal.String(v))
}

func TestScriptAndUse(t *testing.T) {
	dir := t.TempDir()
	lib := filepath.Join(dir, "lib")

	require.NoError(t, os.Mkdir(lib, 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(lib, "util.nm"), []byte("square(x) => x * x\n"), 0o600,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "main.nm"),
		[]byte("use \"lib/util.nm\"\nmain() => range(4) | map(square) | show_pipe()\n"),
		0o600,
	))

	e, out := setup(t)

	_, err := e.Script(context.Background(), filepath.Join(dir, "main.nm"))
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n4\n9\n", out.String())
}

func TestUseCycle(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.nm"), []byte("use \"b.nm\"\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.nm"), []byte("use \"a.nm\"\n"), 0o600))

	e, _ := setup(t)

	_, err := e.Script(context.Background(), filepath.Join(dir, "a.nm"))
	assert.ErrorIs(t, err, source.ErrCycle)
}

func TestAbandonedProducerLeaksNothing(t *testing.T) {
	e, _ := setup(t)

	v, err := program(t, e, "range(1000) | {pull; pull}\n")
	require.NoError(t, err)
	assert.Equal(t, "1", literal.String(v))
}

func TestDefine(t *testing.T) {
	e, _ := setup(t)

	v, ok := e.Lookup("print")
	require.True(t, ok)

	e.Define("say", v)

	_, err := program(t, e, "say(1)\n")
	require.NoError(t, err)
}

package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/michaelmacinnis/nemo/internal/common/interface/cell"
	"github.com/michaelmacinnis/nemo/internal/common/type/boolean"
	"github.com/michaelmacinnis/nemo/internal/common/type/builtin"
	"github.com/michaelmacinnis/nemo/internal/common/type/errsys"
	"github.com/michaelmacinnis/nemo/internal/common/type/num"
	"github.com/michaelmacinnis/nemo/internal/common/type/str"
	"github.com/michaelmacinnis/nemo/internal/common/type/unit"
)

func call(t *testing.T, m map[string]cell.I, name string, args ...cell.I) (cell.I, error) {
	t.Helper()

	c, ok := m[name]
	require.True(t, ok, "missing builtin %s", name)

	return builtin.To(c).Fn(context.Background(), args)
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer

	m := Functions(Lines(strings.NewReader(""), &out), &out)

	for _, c := range []cell.I{num.Int(5), num.New(0.5), str.New("hi"), boolean.True, unit.Value} {
		v, err := call(t, m, "print", c)
		require.NoError(t, err)
		assert.Equal(t, unit.Value, v)
	}

	assert.Equal(t, "5\n0.5\nhi\ntrue\n()\n", out.String())
}

func TestInput(t *testing.T) {
	var out bytes.Buffer

	m := Functions(Lines(strings.NewReader("alice\r\nbob"), &out), &out)

	v, err := call(t, m, "input", str.New("name? "))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("alice")))

	v, err = call(t, m, "input", str.New("again? "))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("bob")))

	_, err = call(t, m, "input", str.New("more? "))
	assert.ErrorIs(t, err, ErrEndOfInput)

	assert.Equal(t, "name? again? more? ", out.String())
}

func TestInputCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, w := io.Pipe()
	defer r.Close()

	var out bytes.Buffer

	m := Functions(Lines(r, io.Discard), &out)
	fn := builtin.To(m["input"]).Fn

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fn(ctx, []cell.I{str.New("first? ")})
	require.ErrorIs(t, err, context.Canceled)

	go func() {
		_, _ = io.WriteString(w, "late\n")
		w.Close()
	}()

	v, err := fn(context.Background(), []cell.I{str.New("second? ")})
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("late")))

	_, err = fn(context.Background(), []cell.I{str.New("third? ")})
	assert.ErrorIs(t, err, ErrEndOfInput)
}

func TestInputError(t *testing.T) {
	boom := errors.New("boom")

	m := Functions(func(string) (string, error) { return "", boom }, io.Discard)

	_, err := call(t, m, "input", str.New("? "))
	assert.ErrorIs(t, err, boom)
}

func TestConversions(t *testing.T) {
	m := Functions(nil, nil)

	v, err := call(t, m, "number", str.New(" 42 "))
	require.NoError(t, err)
	assert.True(t, v.Equal(num.Int(42)))

	_, err = call(t, m, "number", str.New("forty-two"))
	assert.ErrorIs(t, err, errsys.TypeMismatch)

	_, err = call(t, m, "number", boolean.True)
	assert.ErrorIs(t, err, errsys.TypeMismatch)

	v, err = call(t, m, "string", num.New(2.5))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("2.5")))
}

func TestMatch(t *testing.T) {
	m := Functions(nil, nil)

	v, err := call(t, m, "match", str.New("*.nm"), str.New("boot.nm"))
	require.NoError(t, err)
	assert.Equal(t, boolean.True, v)

	v, err = call(t, m, "match", str.New("[a-c]?"), str.New("dx"))
	require.NoError(t, err)
	assert.Equal(t, boolean.False, v)

	_, err = call(t, m, "match", num.Int(1), str.New("x"))
	assert.ErrorIs(t, err, errsys.TypeMismatch)
}

func TestArguments(t *testing.T) {
	m := Arguments([]string{"script.nm", "one"})

	assert.True(t, m["args_count"].Equal(num.Int(2)))

	v, err := call(t, m, "arg", num.Int(1))
	require.NoError(t, err)
	assert.True(t, v.Equal(str.New("one")))

	_, err = call(t, m, "arg", num.Int(2))
	assert.ErrorIs(t, err, errsys.InvalidIndex)
}

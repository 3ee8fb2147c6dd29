package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

func TestScanComplete(t *testing.T) {
	r := New("test")

	ns, err := r.Scan("x := 1; x + 1")
	require.NoError(t, err)
	require.Len(t, ns, 2)
	assert.False(t, r.Pending())
}

func TestScanContinuation(t *testing.T) {
	r := New("test")

	for _, line := range []string{"add(x, y) => {", "  x + y"} {
		ns, err := r.Scan(line)
		require.NoError(t, err)
		assert.Nil(t, ns)
		assert.True(t, r.Pending())
	}

	ns, err := r.Scan("}")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.False(t, r.Pending())

	d, ok := ns[0].(*ast.Definition)
	require.True(t, ok)
	assert.Equal(t, "add", d.Name)
	assert.Equal(t, []string{"x", "y"}, d.Params)
}

func TestScanErrorResets(t *testing.T) {
	r := New("test")

	_, err := r.Scan("1 + )")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test:1:5")
	assert.False(t, r.Pending())
}

func TestReset(t *testing.T) {
	r := New("test")

	_, err := r.Scan("(1 +")
	require.NoError(t, err)
	require.True(t, r.Pending())

	r.Reset()
	assert.False(t, r.Pending())
}

func TestParse(t *testing.T) {
	ns, err := Parse("test", "main() => print(1)\n")
	require.NoError(t, err)
	require.Len(t, ns, 1)

	_, err = Parse("test", "main() =>")
	require.Error(t, err)
}

package history

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	t.Setenv("NEMO_HISTORY", "")
	t.Setenv("HOME", "/home/nemo")

	assert.Equal(t, filepath.Join("/home/nemo", ".nemo_history"), Path())

	t.Setenv("NEMO_HISTORY", "/tmp/elsewhere")
	assert.Equal(t, "/tmp/elsewhere", Path())
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	t.Setenv("NEMO_HISTORY", path)

	err := Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "range(3) | show_pipe()\nprint(1)\n")
	})
	require.NoError(t, err)

	var lines []string

	err = Load(func(r io.Reader) (int, error) {
		s := bufio.NewScanner(r)
		for s.Scan() {
			lines = append(lines, s.Text())
		}

		return len(lines), s.Err()
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"range(3) | show_pipe()", "print(1)"}, lines)
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("NEMO_HISTORY", filepath.Join(t.TempDir(), "missing"))

	err := Load(func(r io.Reader) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Released under an MIT license. See LICENSE.

// Package source loads nemo files named by use and on the command line.
package source

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/michaelmacinnis/nemo/internal/reader"
	"github.com/michaelmacinnis/nemo/internal/reader/ast"
)

// ErrCycle is returned when a file uses itself, directly or indirectly.
var ErrCycle = errors.New("use cycle") //nolint:gochecknoglobals

// T (source) tracks the files that are currently being loaded.
type T struct {
	sync.Mutex
	active map[string]struct{}
}

type source = T

// New creates a new source loader.
func New() *source {
	return &source{active: map[string]struct{}{}}
}

// Enter reads and parses the file at path. The caller must call leave
// once it has finished evaluating the returned nodes.
func (s *source) Enter(path string) (nodes []ast.Node, leave func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "use %s", path)
	}

	s.Lock()

	if _, ok := s.active[abs]; ok {
		s.Unlock()

		return nil, nil, errors.Wrapf(ErrCycle, "use %s", path)
	}

	s.active[abs] = struct{}{}

	s.Unlock()

	leave = func() {
		s.Lock()
		delete(s.active, abs)
		s.Unlock()
	}

	nodes, err = Read(path)
	if err != nil {
		leave()

		return nil, nil, err
	}

	return nodes, leave, nil
}

// Read reads and parses the file at path.
func Read(path string) ([]ast.Node, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	nodes, err := reader.Parse(path, string(b))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return nodes, nil
}

// Resolve returns the location of path as used from the file named from.
// Relative paths are relative to the directory containing from.
func Resolve(from, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(filepath.Dir(from), path)
}

// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's command history.
package history

import (
	"io"
	"os"
	"path/filepath"
)

// Path returns the history file's location. NEMO_HISTORY overrides the
// default of ~/.nemo_history.
func Path() string {
	if p := os.Getenv("NEMO_HISTORY"); p != "" {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return filepath.Join(home, ".nemo_history")
}

// Load passes the history file to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

// Save passes a freshly truncated history file to write.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(Path())
}

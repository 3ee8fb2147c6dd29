package errsys

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/michaelmacinnis/nemo/internal/common/struct/loc"
)

func TestIsKind(t *testing.T) {
	err := error(New(ArityMismatch, nil, "expected %d, passed %d", 1, 2))

	assert.True(t, errors.Is(err, ArityMismatch))
	assert.False(t, errors.Is(err, UnboundName))

	wrapped := fmt.Errorf("calling f: %w", err)
	assert.ErrorIs(t, wrapped, ArityMismatch)
}

func TestMessage(t *testing.T) {
	l := &loc.T{Char: 3, Line: 2, Name: "test"}

	err := New(UnboundName, l, "'%s'", "x")
	assert.Equal(t, "test:2:3: unbound name: 'x'", err.Error())

	err = New(DivisionByZero, nil, "1 / 0")
	assert.Equal(t, "division by zero: 1 / 0", err.Error())
}

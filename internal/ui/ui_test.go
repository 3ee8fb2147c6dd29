package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/michaelmacinnis/nemo/internal/engine"
	"github.com/michaelmacinnis/nemo/internal/reader"
)

func TestFeed(t *testing.T) {
	defer goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("os/signal.signal_recv"),
		goleak.IgnoreTopFunction("os/signal.loop"),
	)

	var out, errs bytes.Buffer

	e, err := engine.New(engine.WithStdin(strings.NewReader("")), engine.WithStdout(&out))
	require.NoError(t, err)

	r := reader.New("nemo")
	ctx := context.Background()

	for _, line := range []string{
		"sum(n) => {",
		"  range(n) | reduce(|a, b| -> a + b, 0)",
		"}",
		"x := sum(4)",
		"x; x + 1",
		"range(3) | show_pipe()",
		"nope",
		"1 + )",
		`"done"`,
	} {
		Feed(ctx, e, r, line, &out, &errs)
	}

	assert.Equal(t, "6\n7\n0\n1\n2\n\"done\"\n", out.String())
	assert.Contains(t, errs.String(), "unbound name")
	assert.Contains(t, errs.String(), "nemo:1:5")
	assert.False(t, r.Pending())
}

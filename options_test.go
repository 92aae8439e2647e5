package third

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forthworks/third/internal/logio"
)

func Test_WithDumpOutput_RoutesDumpThroughLogioWriter(t *testing.T) {
	var logged strings.Builder
	log := logio.Logger{}
	log.SetOutput(&logged)

	lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
	in := New(
		WithErrorOutput(&strings.Builder{}),
		WithDumpOutput(lw),
	)
	t.Cleanup(func() { in.Destroy() })

	require.NoError(t, in.Eval("1 2 dump"))
	require.NoError(t, lw.Close())

	out := logged.String()
	require.Contains(t, out, "DUMP: Stack dump:")
	require.Contains(t, out, "DUMP: 2 (INT)")
	require.Contains(t, out, "DUMP: 1 (INT)")
}

func Test_WithTee_CopiesOutputToSecondSink(t *testing.T) {
	var primary, secondary strings.Builder
	in := New(
		WithErrorOutput(&strings.Builder{}),
		WithOutput(&primary),
		WithTee(&secondary),
	)
	t.Cleanup(func() { in.Destroy() })

	require.NoError(t, in.Eval("65 emit"))
	require.NoError(t, in.FlushOutput())

	require.Equal(t, "A", primary.String())
	require.Equal(t, "A", secondary.String())
}

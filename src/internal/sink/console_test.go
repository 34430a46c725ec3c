// FILE: wescoco/src/internal/sink/console_test.go
package sink

import (
	"bytes"
	"context"
	"testing"
	"time"

	"wescoco/src/internal/core"

	"github.com/lixenwraith/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *log.Logger {
	return log.NewLogger()
}

func TestConsoleSink_WritesLinesInOrder(t *testing.T) {
	snk, err := NewConsoleSink(map[string]any{"buffer_size": int64(8)}, newTestLogger())
	require.NoError(t, err)

	var buf bytes.Buffer
	snk.output = &buf

	require.NoError(t, snk.Start(context.Background()))

	in := snk.Input()
	in <- core.LogEntry{Message: "alpha", Time: time.Now()}
	in <- core.LogEntry{Message: "beta", Time: time.Now()}
	in <- core.LogEntry{Message: "", Time: time.Now()}
	close(in)

	select {
	case <-snk.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not drain")
	}

	assert.Equal(t, "alpha\nbeta\n\n", buf.String())

	stats := snk.GetStats()
	assert.Equal(t, "console", stats.Type)
	assert.Equal(t, uint64(3), stats.TotalProcessed)
	assert.Equal(t, "stderr", stats.Details["target"])
}

func TestConsoleSink_StopsOnContextCancel(t *testing.T) {
	snk, err := NewConsoleSink(nil, newTestLogger())
	require.NoError(t, err)

	var buf bytes.Buffer
	snk.output = &buf

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, snk.Start(ctx))
	cancel()

	select {
	case <-snk.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("sink did not stop on context cancel")
	}
}

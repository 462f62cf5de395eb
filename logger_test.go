package letterbox

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggerWithHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := newCaptureLogger(&buf)

	l.WithRequestID(7).WithBoard("ABC-DEF-GHI-JKL").WithWorker(2).Info("solving")

	out := buf.String()
	assert.Contains(t, out, `"request_id":7`)
	assert.Contains(t, out, `"board":"ABC-DEF-GHI-JKL"`)
	assert.Contains(t, out, `"worker":2`)
}

func TestLoggerOperations(t *testing.T) {
	var buf bytes.Buffer
	l := newCaptureLogger(&buf)
	ctx := context.Background()

	l.LogFilter(ctx, "ABC-DEF-GHI-JKL", 42, time.Millisecond, nil)
	l.LogSolveStart(ctx, 1, "ABC-DEF-GHI-JKL", 4, 42)
	l.LogSolveComplete(ctx, 1, 2, time.Millisecond)
	l.LogSuperseded(ctx, 1, 2)
	l.LogWorkerDecodeError(ctx, 2, 0, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "filter completed")
	assert.Contains(t, out, "solve started")
	assert.Contains(t, out, "solve completed")
	assert.Contains(t, out, "solve superseded")
	assert.Contains(t, out, "boom")
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := NoopLogger()
	require.NotNil(t, l)

	// Must not panic and must not be enabled at any practical level.
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
	l.LogSolveStart(context.Background(), 1, "ABC-DEF-GHI-JKL", 4, 0)
}

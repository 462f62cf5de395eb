package letterbox_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	letterbox "github.com/hupe1980/letterbox"
	"github.com/hupe1980/letterbox/board"
)

const testInput = "ABCDEFGHIJKL" // sides ABC, DEF, GHI, JKL

const testWords = `adgjbehkcfil
adgjbehk
kcfil
adg
dak
xyz
abd
`

func prepare(t *testing.T, e *letterbox.Engine) []byte {
	t.Helper()

	b, err := board.New(testInput)
	require.NoError(t, err)

	encoded, err := e.Prepare(context.Background(), b, strings.NewReader(testWords))
	require.NoError(t, err)

	return encoded
}

// drain reads snapshots until the channel closes and returns the last
// one seen.
func drain(ch <-chan letterbox.Snapshot) (letterbox.Snapshot, bool) {
	var (
		last letterbox.Snapshot
		seen bool
	)

	for snap := range ch {
		last = snap
		seen = true
	}

	return last, seen
}

func TestEngineSolve(t *testing.T) {
	e := letterbox.New(letterbox.WithWorkers(2))
	defer e.Close()

	encoded := prepare(t, e)

	ch, err := e.Solve(context.Background(), testInput, encoded)
	require.NoError(t, err)

	snap, seen := drain(ch)
	require.True(t, seen)
	assert.True(t, snap.FinalOverall)

	assert.Equal(t, []string{"ADGJBEHKCFIL"}, snap.Buckets[0])
	assert.Equal(t, []string{"ADGJBEHK KCFIL"}, snap.Buckets[1])
	assert.Equal(t, 2, snap.Solutions())

	for _, bucket := range snap.Buckets[2:] {
		assert.Empty(t, bucket)
	}
}

func TestEngineSolveLowercaseInput(t *testing.T) {
	e := letterbox.New(letterbox.WithWorkers(2))
	defer e.Close()

	encoded := prepare(t, e)

	ch, err := e.Solve(context.Background(), strings.ToLower(testInput), encoded)
	require.NoError(t, err)

	snap, _ := drain(ch)
	assert.True(t, snap.FinalOverall)
	assert.Equal(t, 2, snap.Solutions())
}

func TestEngineSolveMoreWorkersThanCandidates(t *testing.T) {
	e := letterbox.New(letterbox.WithWorkers(16))
	defer e.Close()

	encoded := prepare(t, e)

	ch, err := e.Solve(context.Background(), testInput, encoded)
	require.NoError(t, err)

	snap, _ := drain(ch)
	assert.True(t, snap.FinalOverall)
	assert.Equal(t, 2, snap.Solutions())
}

func TestEngineSolveMalformedBoard(t *testing.T) {
	e := letterbox.New()
	defer e.Close()

	_, err := e.Solve(context.Background(), "TOOSHORT", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, letterbox.ErrMalformedBoard)
}

func TestEngineSolveUndecodableCandidates(t *testing.T) {
	metrics := &letterbox.BasicMetricsCollector{}
	e := letterbox.New(letterbox.WithWorkers(2), letterbox.WithMetricsCollector(metrics))
	defer e.Close()

	ch, err := e.Solve(context.Background(), testInput, []byte("garbage"))
	require.NoError(t, err)

	snap, seen := drain(ch)
	require.True(t, seen)
	assert.True(t, snap.FinalOverall)
	assert.Zero(t, snap.Solutions())

	assert.EqualValues(t, 2, metrics.GetStats().DecodeErrors)
}

func TestEngineSolveEmptyCandidates(t *testing.T) {
	e := letterbox.New(letterbox.WithWorkers(2))
	defer e.Close()

	b, err := board.New(testInput)
	require.NoError(t, err)

	encoded, err := e.Prepare(context.Background(), b, strings.NewReader("xyz\nqqq\n"))
	require.NoError(t, err)

	ch, err := e.Solve(context.Background(), testInput, encoded)
	require.NoError(t, err)

	snap, seen := drain(ch)
	require.True(t, seen)
	assert.True(t, snap.FinalOverall)
	assert.Zero(t, snap.Solutions())
}

func TestEngineSupersession(t *testing.T) {
	e := letterbox.New(letterbox.WithWorkers(2))
	defer e.Close()

	encoded := prepare(t, e)

	first, err := e.Solve(context.Background(), testInput, encoded)
	require.NoError(t, err)

	second, err := e.Solve(context.Background(), testInput, encoded)
	require.NoError(t, err)

	// The first channel always closes: either it finished before the
	// second request landed or it was superseded without a final
	// snapshot.
	firstSnap, seen := drain(first)
	if seen && firstSnap.FinalOverall {
		assert.Equal(t, 2, firstSnap.Solutions())
	}

	secondSnap, seen := drain(second)
	require.True(t, seen)
	assert.True(t, secondSnap.FinalOverall)
	assert.Equal(t, 2, secondSnap.Solutions())
	assert.Greater(t, secondSnap.RequestID, firstSnap.RequestID)
}

func TestEngineClosed(t *testing.T) {
	e := letterbox.New()
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())

	_, err := e.Solve(context.Background(), testInput, nil)
	assert.ErrorIs(t, err, letterbox.ErrClosed)
}

func TestEngineMetrics(t *testing.T) {
	metrics := &letterbox.BasicMetricsCollector{}
	e := letterbox.New(letterbox.WithWorkers(2), letterbox.WithMetricsCollector(metrics))
	defer e.Close()

	encoded := prepare(t, e)

	ch, err := e.Solve(context.Background(), testInput, encoded)
	require.NoError(t, err)
	drain(ch)

	stats := metrics.GetStats()
	assert.EqualValues(t, 1, stats.FilterCount)
	assert.EqualValues(t, 1, stats.SolveCount)
	assert.EqualValues(t, 2, stats.SolveSolutions)
	assert.GreaterOrEqual(t, stats.ChunkCount, int64(2))
}

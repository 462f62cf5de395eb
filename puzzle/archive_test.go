package puzzle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/letterbox/blobstore"
	"github.com/hupe1980/letterbox/puzzle"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestArchiveRecordAndLookup(t *testing.T) {
	ctx := context.Background()
	a := puzzle.NewArchive(blobstore.NewMemoryStore())

	older := puzzle.Puzzle{Date: date(2023, 12, 24), Input: "ABCDEFGHIJKL"}
	newer := puzzle.Puzzle{Date: date(2023, 12, 25), Input: "CABXYZPONMLK"}

	require.NoError(t, a.Record(ctx, older))
	require.NoError(t, a.Record(ctx, newer))

	got, err := a.ByDate(ctx, date(2023, 12, 25))
	require.NoError(t, err)
	assert.Equal(t, newer, got)

	// Lookup by input ignores letter order within a side.
	got, err = a.ByInput(ctx, "BACZYXNOPKML")
	require.NoError(t, err)
	assert.Equal(t, newer, got)

	dates, err := a.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2023, 12, 25), date(2023, 12, 24)}, dates)
}

func TestArchiveNotArchived(t *testing.T) {
	ctx := context.Background()
	a := puzzle.NewArchive(blobstore.NewMemoryStore())

	_, err := a.ByDate(ctx, date(2023, 12, 25))
	assert.ErrorIs(t, err, puzzle.ErrNotArchived)

	_, err = a.ByInput(ctx, "ABCDEFGHIJKL")
	assert.ErrorIs(t, err, puzzle.ErrNotArchived)

	dates, err := a.Dates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestArchiveRecordOverwrite(t *testing.T) {
	ctx := context.Background()
	a := puzzle.NewArchive(blobstore.NewMemoryStore())

	p := puzzle.Puzzle{Date: date(2023, 12, 25), Input: "CABXYZPONMLK"}
	require.NoError(t, a.Record(ctx, p))
	require.NoError(t, a.Record(ctx, p))

	dates, err := a.Dates(ctx)
	require.NoError(t, err)
	assert.Len(t, dates, 1)
}

func TestArchiveCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, store.Put(ctx, puzzle.InputsByDateName, []byte("not json")))

	a := puzzle.NewArchive(store)

	_, err := a.Dates(ctx)
	require.Error(t, err)
}

package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/letterbox/blobstore"
	"github.com/hupe1980/letterbox/codec"
)

// Document names of the blob-backed archive.
const (
	InputsByDateName = "inputsByDate.json"
	DatesByInputName = "datesByInput.json"
)

// ErrNotArchived is returned when a lookup finds no archived puzzle.
var ErrNotArchived = errors.New("puzzle not archived")

// ArchiveStore persists the puzzle history and resolves it in both
// directions: publication date to input and normalized input to date.
type ArchiveStore interface {
	// Record stores a puzzle under its date and its normalized input.
	// Recording the same puzzle again is a no-op overwrite.
	Record(ctx context.Context, p Puzzle) error

	// ByDate returns the puzzle published on the given date.
	ByDate(ctx context.Context, date time.Time) (Puzzle, error)

	// ByInput returns the puzzle whose sides match input, regardless of
	// letter order within a side.
	ByInput(ctx context.Context, input string) (Puzzle, error)

	// Dates returns all archived publication dates, newest first.
	Dates(ctx context.Context) ([]time.Time, error)
}

// Archive is a blob-backed ArchiveStore. It keeps two documents, one
// keyed by date and one keyed by normalized input, encoded with the
// configured codec.
type Archive struct {
	store blobstore.Store
	codec codec.Codec
}

// ArchiveOption configures Archive constructor behavior.
type ArchiveOption func(*Archive)

// WithCodec configures the codec used for archive documents.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) ArchiveOption {
	return func(a *Archive) {
		if c == nil {
			c = codec.Default
		}
		a.codec = c
	}
}

// NewArchive creates an Archive over the given store.
func NewArchive(store blobstore.Store, optFns ...ArchiveOption) *Archive {
	a := &Archive{
		store: store,
		codec: codec.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(a)
		}
	}

	return a
}

func (a *Archive) Record(ctx context.Context, p Puzzle) error {
	byDate, err := a.loadDoc(ctx, InputsByDateName)
	if err != nil {
		return err
	}

	byInput, err := a.loadDoc(ctx, DatesByInputName)
	if err != nil {
		return err
	}

	byDate[p.Date.Format(DateLayout)] = p.Input
	byInput[p.Normalized()] = p.Date.Format(DateLayout)

	if err := a.saveDoc(ctx, InputsByDateName, byDate); err != nil {
		return err
	}

	return a.saveDoc(ctx, DatesByInputName, byInput)
}

func (a *Archive) ByDate(ctx context.Context, date time.Time) (Puzzle, error) {
	byDate, err := a.loadDoc(ctx, InputsByDateName)
	if err != nil {
		return Puzzle{}, err
	}

	input, ok := byDate[date.Format(DateLayout)]
	if !ok {
		return Puzzle{}, ErrNotArchived
	}

	return Puzzle{Date: date, Input: input}, nil
}

func (a *Archive) ByInput(ctx context.Context, input string) (Puzzle, error) {
	byInput, err := a.loadDoc(ctx, DatesByInputName)
	if err != nil {
		return Puzzle{}, err
	}

	dateStr, ok := byInput[Normalize(input)]
	if !ok {
		return Puzzle{}, ErrNotArchived
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return Puzzle{}, fmt.Errorf("archived date %q: %w", dateStr, err)
	}

	return a.ByDate(ctx, date)
}

func (a *Archive) Dates(ctx context.Context) ([]time.Time, error) {
	byDate, err := a.loadDoc(ctx, InputsByDateName)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(byDate))
	for dateStr := range byDate {
		date, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("archived date %q: %w", dateStr, err)
		}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	return dates, nil
}

// loadDoc reads one archive document. A missing document is an empty
// archive, not an error.
func (a *Archive) loadDoc(ctx context.Context, name string) (map[string]string, error) {
	data, err := blobstore.ReadAll(ctx, a.store, name)
	if errors.Is(err, blobstore.ErrNotFound) {
		return map[string]string{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	doc := map[string]string{}
	if err := a.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return doc, nil
}

func (a *Archive) saveDoc(ctx context.Context, name string, doc map[string]string) error {
	data, err := a.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := a.store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

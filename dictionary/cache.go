package dictionary

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/letterbox/blobstore"
	"github.com/hupe1980/letterbox/board"
	"github.com/hupe1980/letterbox/codec"
	"github.com/hupe1980/letterbox/letters"
)

// Cache stores filtered candidate lists keyed by the word list's CRC32
// and the board, so an unchanged list is filtered once per board.
type Cache struct {
	store  blobstore.Store
	prefix string
}

// NewCache creates a cache backed by store. Entries are written under
// prefix.
func NewCache(store blobstore.Store, prefix string) *Cache {
	return &Cache{store: store, prefix: prefix}
}

func (c *Cache) key(b *board.Board, checksum uint32) string {
	return fmt.Sprintf("%s%08x-%s.seq", c.prefix, checksum, b.String())
}

// Candidates returns the filtered candidates for raw on b, reading the
// cached encoding when present and filtering and writing it otherwise.
// A cache entry that no longer decodes is rebuilt in place.
func (c *Cache) Candidates(ctx context.Context, b *board.Board, raw []byte) ([]letters.Sequence, error) {
	key := c.key(b, crc32.ChecksumIEEE(raw))

	if data, err := blobstore.ReadAll(ctx, c.store, key); err == nil {
		seqs, derr := codec.DecodeSequences(data)
		if derr == nil {
			return seqs, nil
		}
	} else if !errors.Is(err, blobstore.ErrNotFound) {
		return nil, fmt.Errorf("read candidate cache: %w", err)
	}

	seqs, err := Filter(b, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	if err := c.store.Put(ctx, key, codec.EncodeSequences(seqs)); err != nil {
		return nil, fmt.Errorf("write candidate cache: %w", err)
	}

	return seqs, nil
}

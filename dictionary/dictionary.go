package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hupe1980/letterbox/board"
	"github.com/hupe1980/letterbox/letters"
)

// MinWordLen is the shortest playable word.
const MinWordLen = 3

// Candidate reports whether seq is playable on b: at least three
// letters, every letter on the board, no two consecutive letters on the
// same side and no letter used twice.
func Candidate(b *board.Board, seq letters.Sequence) bool {
	n := seq.Len()
	if n < MinWordLen {
		return false
	}

	m := seq.Mask()
	if m.Intersect(b.FullMask()) != m {
		return false
	}

	// A repeated letter collapses in the mask.
	if m.Len() != n {
		return false
	}

	for i := 1; i < n; i++ {
		if b.SameSide(seq.At(i-1), seq.At(i)) {
			return false
		}
	}

	return true
}

// Filter reads a line-oriented word list and returns the playable
// candidates, deduplicated and sorted ascending by their packed value.
// Lines that do not parse as words are skipped.
func Filter(b *board.Board, r io.Reader) ([]letters.Sequence, error) {
	seen := make(map[letters.Sequence]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		seq, err := letters.ParseSequence(line)
		if err != nil {
			continue
		}

		if !Candidate(b, seq) {
			continue
		}

		seen[seq] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	out := make([]letters.Sequence, 0, len(seen))
	for seq := range seen {
		out = append(out, seq)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// Package solver enumerates puzzle solutions over a shared candidate
// list. Work is partitioned by the index of the first word, so
// disjoint ranges can be solved concurrently without coordination.
package solver

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/letterbox/letters"
)

// MaxWords caps the search depth.
const MaxWords = 5

// maxSubRanges bounds how many chunks a single Solve call emits.
const maxSubRanges = 4

// Chunk is one batch of solutions from a Solve call. Final marks the
// last chunk of that call.
type Chunk struct {
	RequestID uint64
	Solutions [][]letters.Sequence
	Final     bool
}

// Solver searches for solutions over a fixed candidate list. A
// solution is a chain of one to MaxWords candidates where each word
// starts with the previous word's last letter, shares no other letter
// with the words before it, and the chain together covers the full
// board mask.
//
// A Solver is immutable after New and safe for concurrent Solve calls.
type Solver struct {
	words   []letters.Sequence
	byFirst [26]*roaring.Bitmap
	full    letters.Set
}

// New builds a solver over words, which must all be non-empty. The
// posting lists index candidates by their first letter and iterate in
// ascending candidate order.
func New(words []letters.Sequence, full letters.Set) *Solver {
	s := &Solver{words: words, full: full}

	for i := range s.byFirst {
		s.byFirst[i] = roaring.New()
	}

	for i, w := range words {
		s.byFirst[w.First()].Add(uint32(i))
	}

	return s
}

// Words returns the number of candidates.
func (s *Solver) Words() int {
	return len(s.words)
}

// Solve emits all solutions whose first word index lies in [lo, hi).
// The interval is walked in up to four sub-ranges with a chunk emitted
// after each; the last chunk carries Final. An empty interval still
// emits one final empty chunk. Between sub-ranges the context is
// checked and a cancelled context abandons the remainder.
func (s *Solver) Solve(ctx context.Context, requestID uint64, lo, hi int, emit func(Chunk)) error {
	sub := Split(lo, hi, maxSubRanges)
	if len(sub) == 0 {
		emit(Chunk{RequestID: requestID, Final: true})
		return nil
	}

	for i, r := range sub {
		if err := ctx.Err(); err != nil {
			return err
		}

		var sols [][]letters.Sequence

		s.solveRange(r.Lo, r.Hi, func(path []letters.Sequence) {
			sols = append(sols, append([]letters.Sequence(nil), path...))
		})

		emit(Chunk{RequestID: requestID, Solutions: sols, Final: i == len(sub)-1})
	}

	return nil
}

func (s *Solver) solveRange(lo, hi int, found func([]letters.Sequence)) {
	path := make([]letters.Sequence, 0, MaxWords)

	for i := lo; i < hi; i++ {
		w := s.words[i]
		s.extend(append(path, w), w.Mask(), w.Last(), found)
	}
}

// extend grows the chain from need, the letter the next word must start
// with. acc holds every letter used so far; a word qualifies only when
// its sole overlap with acc is that join letter.
func (s *Solver) extend(path []letters.Sequence, acc letters.Set, need letters.Letter, found func([]letters.Sequence)) {
	if acc == s.full {
		found(path)
		return
	}

	if len(path) == MaxWords {
		return
	}

	it := s.byFirst[need].Iterator()
	for it.HasNext() {
		w := s.words[it.Next()]

		m := w.Mask()
		if m.Intersect(acc) != need.Bit() {
			continue
		}

		s.extend(append(path, w), acc.Union(m), w.Last(), found)
	}
}

package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/letterbox/board"
	"github.com/hupe1980/letterbox/letters"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Board generates a random valid board: twelve distinct letters drawn
// from the alphabet, three per side.
func (r *RNG) Board() *board.Board {
	r.mu.Lock()
	var sb strings.Builder
	for _, i := range r.rand.Perm(26)[:12] {
		sb.WriteByte(byte('A' + i))
	}
	r.mu.Unlock()

	b, err := board.New(sb.String())
	if err != nil {
		panic(err)
	}

	return b
}

// Walk generates a random word playable on the board: every letter is
// on the board and no two consecutive letters share a side. Letters may
// repeat, so not every walk is a solver candidate.
func (r *RNG) Walk(b *board.Board, length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := b.FullMask().Letters()

	var sb strings.Builder

	prev := all[r.rand.Intn(len(all))]
	sb.WriteByte(prev.Byte())

	for sb.Len() < length {
		next := all[r.rand.Intn(len(all))]
		if b.SameSide(prev, next) {
			continue
		}

		sb.WriteByte(next.Byte())
		prev = next
	}

	return sb.String()
}

// CandidateWalk generates a random walk with no repeated letters, so it
// always survives dictionary filtering. The length is capped by the
// number of board letters.
func (r *RNG) CandidateWalk(b *board.Board, length int) string {
	length = min(length, letters.Capacity)

	r.mu.Lock()
	defer r.mu.Unlock()

	all := b.FullMask().Letters()

	for {
		var (
			sb   strings.Builder
			used letters.Set
		)

		prev := all[r.rand.Intn(len(all))]
		sb.WriteByte(prev.Byte())
		used = used.Insert(prev)

		stuck := false
		for sb.Len() < length {
			next, ok := r.pickNext(b, all, used, prev)
			if !ok {
				stuck = true
				break
			}

			sb.WriteByte(next.Byte())
			used = used.Insert(next)
			prev = next
		}

		if !stuck {
			return sb.String()
		}
	}
}

// pickNext picks a random unused letter on a different side than prev.
// Caller must hold the lock.
func (r *RNG) pickNext(b *board.Board, all []letters.Letter, used letters.Set, prev letters.Letter) (letters.Letter, bool) {
	candidates := make([]letters.Letter, 0, len(all))
	for _, l := range all {
		if !used.Has(l) && !b.SameSide(prev, l) {
			candidates = append(candidates, l)
		}
	}

	if len(candidates) == 0 {
		return 0, false
	}

	return candidates[r.rand.Intn(len(candidates))], true
}

// WordList generates a newline-separated word list of random walks on
// the board, with lengths in [minLen, maxLen]. Some entries repeat
// letters and get dropped by filtering, which mirrors real word lists.
func (r *RNG) WordList(b *board.Board, words, minLen, maxLen int) string {
	var sb strings.Builder
	for range words {
		length := minLen + r.Intn(maxLen-minLen+1)
		sb.WriteString(r.Walk(b, length))
		sb.WriteByte('\n')
	}

	return sb.String()
}

package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/letterbox/letters"
)

func TestBoard(t *testing.T) {
	rng := NewRNG(4711)

	b := rng.Board()
	assert.Equal(t, 12, b.FullMask().Len())
}

func TestBoardDeterministic(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Board()

	rng.Reset()
	second := rng.Board()

	assert.Equal(t, first.String(), second.String())
}

func TestWalk(t *testing.T) {
	rng := NewRNG(4711)
	b := rng.Board()

	w := rng.Walk(b, 8)
	require.Len(t, w, 8)

	for i := 0; i < len(w); i++ {
		l, err := letters.ParseLetter(w[i])
		require.NoError(t, err)
		assert.True(t, b.Has(l))

		if i > 0 {
			prev, _ := letters.ParseLetter(w[i-1])
			assert.False(t, b.SameSide(prev, l))
		}
	}
}

func TestCandidateWalk(t *testing.T) {
	rng := NewRNG(4711)
	b := rng.Board()

	w := rng.CandidateWalk(b, 8)
	require.Len(t, w, 8)

	seen := map[byte]bool{}
	for i := 0; i < len(w); i++ {
		assert.False(t, seen[w[i]])
		seen[w[i]] = true
	}
}

func TestWordList(t *testing.T) {
	rng := NewRNG(4711)
	b := rng.Board()

	list := rng.WordList(b, 100, 3, 8)

	lines := strings.Split(strings.TrimSuffix(list, "\n"), "\n")
	require.Len(t, lines, 100)

	for _, line := range lines {
		assert.GreaterOrEqual(t, len(line), 3)
		assert.LessOrEqual(t, len(line), 8)
	}
}

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/letterbox/letters"
)

func lt(b byte) letters.Letter {
	return letters.Letter(b - 'A')
}

func TestNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		b, err := New("ABCDEFGHIJKL")
		require.NoError(t, err)

		assert.Equal(t, 0, b.Side(lt('A')))
		assert.Equal(t, 1, b.Side(lt('D')))
		assert.Equal(t, 2, b.Side(lt('G')))
		assert.Equal(t, 3, b.Side(lt('J')))
		assert.Equal(t, -1, b.Side(lt('Z')))
		assert.Equal(t, 12, b.FullMask().Len())
	})

	t.Run("lowercase folded", func(t *testing.T) {
		b, err := New("abcdefghijkl")
		require.NoError(t, err)
		assert.Equal(t, "ABC-DEF-GHI-JKL", b.String())
	})

	t.Run("too short", func(t *testing.T) {
		_, err := New("ABCDEF")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedBoard)

		var le *LengthError
		require.ErrorAs(t, err, &le)
		assert.Equal(t, 6, le.Length)
	})

	t.Run("bad character", func(t *testing.T) {
		_, err := New("ABCDEF3HIJKL")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedBoard)

		var ce *CharError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, byte('3'), ce.Char)
		assert.Equal(t, 6, ce.Position)
	})

	t.Run("duplicate letter", func(t *testing.T) {
		_, err := New("ABCDEFGHIJKA")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedBoard)

		var de *DuplicateError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, lt('A'), de.Letter)
	})
}

func TestSameSide(t *testing.T) {
	b, err := New("ABCDEFGHIJKL")
	require.NoError(t, err)

	assert.True(t, b.SameSide(lt('A'), lt('B')))
	assert.True(t, b.SameSide(lt('J'), lt('L')))
	assert.False(t, b.SameSide(lt('C'), lt('D')))
	assert.False(t, b.SameSide(lt('A'), lt('Z')))
	assert.False(t, b.SameSide(lt('Z'), lt('Y')))
}

func TestSideMask(t *testing.T) {
	b, err := New("ABCDEFGHIJKL")
	require.NoError(t, err)

	assert.Equal(t, "ABC", b.SideMask(0).String())
	assert.Equal(t, "JKL", b.SideMask(3).String())
}

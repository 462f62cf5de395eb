package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/letterbox/letters"
)

func seqs(t *testing.T, words ...string) []letters.Sequence {
	t.Helper()

	out := make([]letters.Sequence, 0, len(words))
	for _, w := range words {
		s, err := letters.ParseSequence(w)
		require.NoError(t, err)
		out = append(out, s)
	}

	return out
}

func TestSequencesRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{name: "empty", words: nil},
		{name: "single", words: []string{"CAB"}},
		{name: "several", words: []string{"CAB", "BED", "ABCDEFGHIJKL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := seqs(t, tt.words...)

			data := EncodeSequences(in)
			assert.Len(t, data, 4+8*len(in))

			out, err := DecodeSequences(data)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestDecodeSequencesErrors(t *testing.T) {
	valid := EncodeSequences(seqs(t, "CAB", "BED"))

	t.Run("truncated header", func(t *testing.T) {
		_, err := DecodeSequences(valid[:3])
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := DecodeSequences(valid[:len(valid)-1])
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("oversized count", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint32(data, 1<<30)

		_, err := DecodeSequences(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("trailing bytes", func(t *testing.T) {
		data := append(append([]byte(nil), valid...), 0xFF)

		_, err := DecodeSequences(data)
		require.Error(t, err)

		var me *MalformedError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, len(valid), me.Offset)
	})

	t.Run("invalid sequence value", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint64(data[4:], 0) // no sentinel bit

		_, err := DecodeSequences(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})
}

func TestDecodeSequencesEmptyPayload(t *testing.T) {
	out, err := DecodeSequences(EncodeSequences(nil))
	require.NoError(t, err)
	assert.Empty(t, out)
}

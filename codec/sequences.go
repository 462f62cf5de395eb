package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/letterbox/letters"
)

// ErrMalformed is the base error for undecodable sequence payloads.
// Returned errors satisfy errors.Is(err, ErrMalformed).
var ErrMalformed = errors.New("codec: malformed sequence payload")

// MalformedError carries the byte offset at which decoding failed.
type MalformedError struct {
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("codec: malformed sequence payload at offset %d: %s", e.Offset, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}

const (
	countSize = 4
	seqSize   = 8
)

// SequenceCount reads the count header without decoding the payload.
func SequenceCount(data []byte) (int, error) {
	if len(data) < countSize {
		return 0, &MalformedError{Offset: len(data), Reason: "truncated count header"}
	}

	return int(binary.LittleEndian.Uint32(data)), nil
}

// EncodeSequences serializes sequences as a little-endian uint32 count
// followed by one little-endian uint64 per sequence, in order.
func EncodeSequences(seqs []letters.Sequence) []byte {
	buf := make([]byte, countSize+len(seqs)*seqSize)
	binary.LittleEndian.PutUint32(buf, uint32(len(seqs)))

	off := countSize
	for _, s := range seqs {
		binary.LittleEndian.PutUint64(buf[off:], uint64(s))
		off += seqSize
	}

	return buf
}

// DecodeSequences reverses EncodeSequences. It fails on a truncated
// header, a count that disagrees with the payload length, trailing
// bytes, and values that are not well-formed sequences.
func DecodeSequences(data []byte) ([]letters.Sequence, error) {
	if len(data) < countSize {
		return nil, &MalformedError{Offset: len(data), Reason: "truncated count header"}
	}

	count := int(binary.LittleEndian.Uint32(data))

	want := countSize + count*seqSize
	if count > (len(data)-countSize)/seqSize || len(data) < want {
		return nil, &MalformedError{Offset: countSize, Reason: fmt.Sprintf("count %d exceeds payload", count)}
	}

	if len(data) != want {
		return nil, &MalformedError{Offset: want, Reason: "trailing bytes after payload"}
	}

	seqs := make([]letters.Sequence, count)
	for i := range seqs {
		off := countSize + i*seqSize

		s := letters.Sequence(binary.LittleEndian.Uint64(data[off:]))
		if !s.Valid() {
			return nil, &MalformedError{Offset: off, Reason: fmt.Sprintf("value %#x is not a sequence", uint64(s))}
		}

		seqs[i] = s
	}

	return seqs, nil
}

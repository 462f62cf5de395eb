package letters

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Capacity is the maximum number of letters a Sequence can hold.
const Capacity = 12

// ErrSequenceOverflow is the panic value raised when appending to a full
// Sequence. Callers must check IsFull before Append.
var ErrSequenceOverflow = errors.New("letters: append to full sequence")

// Sequence is an ordered run of up to twelve letters packed into a
// uint64. Each letter occupies five bits, most recent in the low bits.
// A single sentinel bit sits directly above the packed letters, so the
// position of the highest set bit encodes the length. The empty
// sequence is the value 1.
type Sequence uint64

// Empty returns the sequence with no letters.
func Empty() Sequence {
	return Sequence(1)
}

// Len returns the number of letters in the sequence.
func (s Sequence) Len() int {
	return (bits.Len64(uint64(s)) - 1) / 5
}

// IsFull reports whether the sequence holds Capacity letters.
func (s Sequence) IsFull() bool {
	return s.Len() == Capacity
}

// Append returns the sequence with l added at the end. It panics with
// ErrSequenceOverflow when the sequence is already full.
func (s Sequence) Append(l Letter) Sequence {
	if s.IsFull() {
		panic(ErrSequenceOverflow)
	}
	return s<<5 | Sequence(l)
}

// At returns the letter at position i, counted from the start.
func (s Sequence) At(i int) Letter {
	shift := uint((s.Len() - 1 - i) * 5)
	return Letter(s>>shift) & 31
}

// First returns the letter at position zero.
func (s Sequence) First() Letter {
	return s.At(0)
}

// Last returns the most recently appended letter.
func (s Sequence) Last() Letter {
	return Letter(s) & 31
}

// Mask returns the set of letters present in the sequence.
func (s Sequence) Mask() Set {
	var m Set
	for v := s; v > 1; v >>= 5 {
		m = m.Insert(Letter(v) & 31)
	}
	return m
}

// Contains reports whether l occurs anywhere in the sequence.
func (s Sequence) Contains(l Letter) bool {
	return s.Mask().Has(l)
}

// Valid reports whether the raw value is a well-formed sequence: the
// sentinel sits on a five-bit slot boundary and every packed code is a
// letter.
func (s Sequence) Valid() bool {
	top := bits.Len64(uint64(s)) - 1
	if top < 0 || top%5 != 0 || top > Capacity*5 {
		return false
	}
	for v := s; v > 1; v >>= 5 {
		if Letter(v)&31 > 25 {
			return false
		}
	}
	return true
}

// TooLongError reports an input that exceeds Capacity letters.
type TooLongError struct {
	Length int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("letters: sequence of %d letters exceeds capacity %d", e.Length, Capacity)
}

// ParseSequence builds a sequence from an ASCII word, folding lowercase.
func ParseSequence(word string) (Sequence, error) {
	if len(word) > Capacity {
		return 0, &TooLongError{Length: len(word)}
	}
	s := Empty()
	for i := 0; i < len(word); i++ {
		l, err := ParseLetter(word[i])
		if err != nil {
			return 0, err
		}
		s = s.Append(l)
	}
	return s, nil
}

func (s Sequence) String() string {
	n := s.Len()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(s.At(i).Byte())
	}
	return sb.String()
}

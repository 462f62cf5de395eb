// Package board models a Letter Boxed puzzle: twelve distinct letters
// arranged three to a side on a square.
package board

import (
	"errors"
	"fmt"

	"github.com/hupe1980/letterbox/letters"
)

// Sides is the number of edges on the square.
const Sides = 4

// PerSide is the number of letters on each edge.
const PerSide = 3

// ErrMalformedBoard is the base error for invalid board inputs.
// Returned errors satisfy errors.Is(err, ErrMalformedBoard).
var ErrMalformedBoard = errors.New("board: malformed board")

// LengthError reports an input that is not exactly twelve characters.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("board: input has %d characters, want %d", e.Length, Sides*PerSide)
}

func (e *LengthError) Unwrap() error {
	return ErrMalformedBoard
}

// CharError reports a character outside the ASCII alphabet.
type CharError struct {
	Char     byte
	Position int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("board: character %q at position %d is not an ASCII letter", e.Char, e.Position)
}

func (e *CharError) Unwrap() error {
	return ErrMalformedBoard
}

// DuplicateError reports a letter that appears more than once.
type DuplicateError struct {
	Letter letters.Letter
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("board: letter %s appears more than once", e.Letter)
}

func (e *DuplicateError) Unwrap() error {
	return ErrMalformedBoard
}

// Board is an immutable arrangement of twelve distinct letters, three
// per side. Side order is top, right, bottom, left.
type Board struct {
	sides [Sides]letters.Set
	side  [26]int8 // -1 when the letter is not on the board
	mask  letters.Set
}

// New builds a board from a twelve-character string laid out side by
// side: positions 0-2 top, 3-5 right, 6-8 bottom, 9-11 left. Lowercase
// input is folded up. Letters must be distinct.
func New(input string) (*Board, error) {
	if len(input) != Sides*PerSide {
		return nil, &LengthError{Length: len(input)}
	}

	b := &Board{}
	for i := range b.side {
		b.side[i] = -1
	}

	for i := 0; i < len(input); i++ {
		l, err := letters.ParseLetter(input[i])
		if err != nil {
			return nil, &CharError{Char: input[i], Position: i}
		}

		if b.mask.Has(l) {
			return nil, &DuplicateError{Letter: l}
		}

		side := i / PerSide
		b.sides[side] = b.sides[side].Insert(l)
		b.side[l] = int8(side)
		b.mask = b.mask.Insert(l)
	}

	return b, nil
}

// Side returns the side index (0-3) of l, or -1 when l is not on the
// board.
func (b *Board) Side(l letters.Letter) int {
	return int(b.side[l])
}

// Has reports whether l is on the board.
func (b *Board) Has(l letters.Letter) bool {
	return b.side[l] >= 0
}

// SameSide reports whether two letters share a side. Letters off the
// board never share a side.
func (b *Board) SameSide(a, c letters.Letter) bool {
	return b.side[a] >= 0 && b.side[a] == b.side[c]
}

// FullMask returns the set of all twelve board letters.
func (b *Board) FullMask() letters.Set {
	return b.mask
}

// SideMask returns the letters on side i.
func (b *Board) SideMask(i int) letters.Set {
	return b.sides[i]
}

func (b *Board) String() string {
	out := make([]byte, 0, Sides*PerSide+Sides-1)
	for i, s := range b.sides {
		if i > 0 {
			out = append(out, '-')
		}
		out = append(out, s.String()...)
	}

	return string(out)
}

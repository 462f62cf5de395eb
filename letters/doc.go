// Package letters provides register-sized representations of uppercase
// ASCII letter data.
//
// Sequence packs an ordered run of up to twelve letters into a single
// uint64 using five bits per letter plus a sentinel bit that tracks the
// populated width. Set is a 26-bit presence mask over the alphabet.
//
// Both types are immutable values: every operation returns a new value
// and the zero-allocation layout keeps them cheap to copy through the
// solver hot path.
package letters

// Package dictionary turns raw word lists into solver candidates.
//
// Filter applies the board rules to a line-oriented word list and
// returns deduplicated candidates in a stable order. NewReader layers
// transparent decompression over compressed lists, Prefilter strips a
// raw list down to words that can ever appear on a board, and Cache
// keeps filtered candidates keyed by the list's checksum so unchanged
// lists are not filtered twice.
package dictionary

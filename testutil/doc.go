// Package testutil provides testing utilities for letterbox.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random boards and synthetic word
// lists with a seeded, reproducible RNG.
//
// # Random Boards and Word Lists
//
//	rng := testutil.NewRNG(seed)
//	b := rng.Board()
//	words := rng.WordList(b, 1000, 3, 8)
package testutil

// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and a reference model that decodes
// cells one bit at a time, against which the word-level code paths are
// checked.
//
// # Random Cells
//
//	rng := testutil.NewRNG(seed)
//	cells := testutil.RandomCells[uint16](rng, 8)
//
// # Reference Model
//
//	want := testutil.Decode(order.Msb0{}, cells, head, n)
//	testutil.Encode(order.Msb0{}, cells, head, want)
package testutil

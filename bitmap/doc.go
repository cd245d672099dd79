// Package bitmap converts bit regions to and from compressed and plain
// integer sets.
//
// A region maps to the set of indices of its set bits. Roaring bitmaps
// (github.com/RoaringBitmap/roaring/v2) suit sparse or clustered regions;
// bitset.BitSet (github.com/bits-and-blooms/bitset) is a dense uint64 word
// array.
//
//	bm, err := bitmap.ToBitmap(flags)
//	...
//	err = bitmap.FromBitmap(other, bm)
package bitmap

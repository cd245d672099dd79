// Package bitvec provides bit-addressable views over ordinary integer memory.
//
// A Slice addresses, reads and mutates individual bits inside uint8, uint16,
// uint32 or uint64 cells. It behaves like a Go slice with bit granularity:
// it can start and end anywhere inside a cell, and sub-slicing never copies.
//
// # Quick Start
//
//	cells := make([]uint8, 4)
//	bits, _ := bitvec.New[order.Msb0](cells)
//
//	_ = bits.Set(3, true)
//	field, _ := bits.Slice(4, 12)
//	_ = bitvec.Store(field, uint8(0xA5))
//	v, _ := bitvec.Load[uint8](field) // 0xA5
//
// # Orderings
//
// The type parameter O selects how a logical index inside one cell maps to a
// physical bit:
//
//	order.Msb0   // index 0 is the most significant bit
//	order.Lsb0   // index 0 is the least significant bit
//	order.Local  // Msb0 on big-endian targets, Lsb0 otherwise
//
// Custom orderings implement order.Cursor and must be a bijection over every
// cell width; order.Check verifies that in tests.
//
// # Regions
//
// A region is a packed descriptor (pointer.BitPtr) of a base cell, a head
// offset and a length in bits. The descriptor is two words wide. Bulk
// operations classify the region into a partial head cell, whole body cells
// and a partial tail cell (package domain) so that body cells are handled a
// whole word at a time.
//
// # Concurrency
//
// Every cell access goes through package access. By default updates are
// atomic read-modify-writes, so two handles covering disjoint bits of the same
// cell can be written from different goroutines. WithAccess(access.Exclusive)
// switches to plain loads and stores for single-owner use.
//
// Package parallel runs the bulk operations over large regions in
// cell-aligned chunks.
//
// # Persistence
//
// ToRecord and FromRecord convert regions to a compact Record. Records are
// encoded through package codec and stored in any blobstore.BlobStore by
// package snapshot:
//
//	store := blobstore.NewLocalStore("./data")
//	_ = snapshot.Save(ctx, store, "flags", bits)
//	restored, _ := snapshot.Load[order.Msb0, uint8](ctx, store, "flags")
//
// Package mapped provides off-heap cells backed by mmap, and package bitmap
// converts regions to and from roaring bitmaps.
package bitvec

// Package mapped owns cell arrays that live outside the Go heap.
//
// Cells are backed by an anonymous mapping or by a memory-mapped file. The
// file form stores cells in the machine's native byte order with no header,
// so a file written on one architecture is only meaningful on another with
// the same endianness.
//
//	cells, err := mapped.OpenFile[uint64]("flags.bin", 1<<20)
//	if err != nil {
//	    return err
//	}
//	defer cells.Close()
//
//	bits, err := mapped.Region[order.Lsb0](cells)
//
// Regions over mapped cells must not be used after Close.
package mapped

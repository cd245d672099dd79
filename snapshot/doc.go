// Package snapshot persists bit regions to a blobstore.BlobStore.
//
// A snapshot is a compacted bitvec.Record wrapped in a small envelope:
//
//	offset  size  field
//	0       4     magic "BVS1" (little-endian 0x31535642)
//	4       2     format version
//	6       1     cell width in bits
//	7       1     codec name length n
//	8       8     payload length
//	16      4     CRC32C of the payload
//	20      4     reserved
//	24      n     codec name
//	24+n    ...   payload
//
// The ordering is not recorded. A snapshot must be loaded with the cell type
// it was saved with, and with the ordering the caller intends; loading under a
// different ordering reinterprets the bits.
//
//	err := snapshot.Save(ctx, store, "flags", bits)
//	bits, err := snapshot.Load[order.Msb0, uint8](ctx, store, "flags")
package snapshot

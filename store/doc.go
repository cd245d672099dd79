// Package store describes the storage cells that back bit regions.
//
// A cell is one of a closed set of unsigned integer types:
//
//	uint8, uint16, uint32, uint64
//
// Each cell type has a bit width W (a power of two), an all-ones value and a
// synchronized counterpart provided by the access package. Index arithmetic in
// this package works on head indices in [0, W) and tail markers in [1, W].
package store

package store

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// Word is the closed set of storage cell types.
type Word interface {
	uint8 | uint16 | uint32 | uint64
}

// Bits returns the bit width W of T.
func Bits[T Word]() uint8 {
	var z T
	return uint8(unsafe.Sizeof(z) * 8)
}

// Size returns the size of T in bytes.
func Size[T Word]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// IndexBits returns log2(W), the number of bits needed to store a head index.
func IndexBits[T Word]() uint8 {
	return uint8(bits.TrailingZeros8(Bits[T]()))
}

// IndexMask returns W-1.
func IndexMask[T Word]() uint8 {
	return Bits[T]() - 1
}

// Ones returns the all-ones cell value.
func Ones[T Word]() T {
	return ^T(0)
}

// Low returns a value with the n least significant bits set.
// n >= W yields the all-ones value.
func Low[T Word](n uint8) T {
	if n >= Bits[T]() {
		return Ones[T]()
	}
	return T(1)<<n - 1
}

// OnesCount returns the number of set bits in v.
func OnesCount[T Word](v T) int {
	switch x := any(v).(type) {
	case uint8:
		return bits.OnesCount8(x)
	case uint16:
		return bits.OnesCount16(x)
	case uint32:
		return bits.OnesCount32(x)
	default:
		return bits.OnesCount64(uint64(v))
	}
}

// Name returns a short name for T ("u8", "u16", "u32", "u64").
func Name[T Word]() string {
	return fmt.Sprintf("u%d", Bits[T]())
}

// Offset advances a head index by n bits. It returns the number of whole
// cells crossed and the head index inside the cell that is reached.
func Offset[T Word](head uint8, n uint) (cells uint, next uint8) {
	total := uint(head) + n
	return total >> IndexBits[T](), uint8(total & uint(IndexMask[T]()))
}

// Span returns the number of cells touched by n bits starting at head, and
// the tail marker: the index one past the last live bit in the final cell.
//
// The tail marker lies in [1, W] for n > 0, so a run ending exactly on a cell
// boundary reports tail == W rather than spilling into a phantom next cell.
// For n == 0 Span returns (0, head).
func Span[T Word](head uint8, n uint) (cells uint, tail uint8) {
	if n == 0 {
		return 0, head
	}
	w := uint(Bits[T]())
	end := uint(head) + n
	cells = (end + w - 1) >> IndexBits[T]()
	return cells, uint8(end - (cells-1)*w)
}

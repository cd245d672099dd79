// Package pointer encodes bit region descriptors.
//
// A BitPtr describes {base cell address, head bit offset, bit length} in the
// space of a pointer and one machine word:
//
//	ptr:  base cell address (nil for the empty region)
//	meta: bits << log2(W) | head
//
// The low log2(W) bits of meta hold the head offset, so the largest
// representable length is MaxBits = MaxUint >> log2(W). The pointer is kept
// as a real pointer so the garbage collector keeps the backing cells alive;
// no bits are hidden inside it.
//
// Every zero-length region encodes as the zero BitPtr, whatever address it
// was derived from, so equality (==) and map keys stay well defined.
//
// A BitPtr never owns memory. Whoever allocated the cells keeps them valid
// for as long as any descriptor refers to them.
package pointer

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/bitvec/store"
)

// BitPtr is an immutable, packed descriptor of a bit region inside T cells.
type BitPtr[T store.Word] struct {
	ptr  unsafe.Pointer
	meta uint
}

// MaxBits returns the largest region length representable for T cells.
func MaxBits[T store.Word]() uint {
	return math.MaxUint >> store.IndexBits[T]()
}

// New validates and encodes a region of bits bits starting at bit head of
// the cell at base.
func New[T store.Word](base *T, head uint8, bits uint) (BitPtr[T], error) {
	addr := uintptr(unsafe.Pointer(base))
	invalid := func(reason string) (BitPtr[T], error) {
		return BitPtr[T]{}, &ErrInvalidRegion{Addr: addr, Head: head, Bits: bits, Reason: reason}
	}

	if head >= store.Bits[T]() {
		return invalid(fmt.Sprintf("head must be below %d", store.Bits[T]()))
	}
	if bits == 0 {
		return BitPtr[T]{}, nil
	}
	if base == nil {
		return invalid("nil base address")
	}
	if addr%store.Size[T]() != 0 {
		return invalid(fmt.Sprintf("base address not aligned to %d bytes", store.Size[T]()))
	}
	if bits > MaxBits[T]() {
		return invalid(fmt.Sprintf("length exceeds maximum of %d bits", MaxBits[T]()))
	}
	cells, _ := store.Span[T](head, bits)
	if cells > (math.MaxUint-uint(addr))/uint(store.Size[T]()) || cells > math.MaxInt/uint(store.Size[T]()) {
		return invalid("region exceeds the address space")
	}
	return unchecked[T](unsafe.Pointer(base), head, bits), nil
}

// FromCells describes every bit of cells.
func FromCells[T store.Word](cells []T) (BitPtr[T], error) {
	if len(cells) == 0 {
		return BitPtr[T]{}, nil
	}
	return FromRaw(&cells[0], len(cells))
}

// FromRaw describes every bit of the n cells starting at base.
func FromRaw[T store.Word](base *T, n int) (BitPtr[T], error) {
	if n < 0 {
		return BitPtr[T]{}, &ErrInvalidRegion{
			Addr:   uintptr(unsafe.Pointer(base)),
			Reason: fmt.Sprintf("negative cell count %d", n),
		}
	}
	if uint(n) > MaxBits[T]()>>store.IndexBits[T]() {
		return BitPtr[T]{}, &ErrInvalidRegion{
			Addr:   uintptr(unsafe.Pointer(base)),
			Reason: fmt.Sprintf("%d cells exceed maximum region length", n),
		}
	}
	return New(base, 0, uint(n)<<store.IndexBits[T]())
}

// unchecked encodes without validation. Callers must already know the
// triple is valid, typically because it was derived from a valid BitPtr.
func unchecked[T store.Word](ptr unsafe.Pointer, head uint8, bits uint) BitPtr[T] {
	if head >= store.Bits[T]() {
		panic(fmt.Sprintf("bitvec: corrupt region head %d for %s cells", head, store.Name[T]()))
	}
	if bits == 0 {
		return BitPtr[T]{}
	}
	return BitPtr[T]{ptr: ptr, meta: bits<<store.IndexBits[T]() | uint(head)}
}

// IsEmpty reports whether the region has no bits.
func (p BitPtr[T]) IsEmpty() bool {
	return p.ptr == nil
}

// Pointer returns the base cell, or nil for the empty region.
func (p BitPtr[T]) Pointer() *T {
	return (*T)(p.ptr)
}

// Head returns the bit offset of the first live bit in the base cell.
func (p BitPtr[T]) Head() uint8 {
	return uint8(p.meta & uint(store.IndexMask[T]()))
}

// Len returns the length of the region in bits.
func (p BitPtr[T]) Len() uint {
	return p.meta >> store.IndexBits[T]()
}

// Tail returns the index one past the last live bit in the final cell, in
// [1, W] for non-empty regions.
func (p BitPtr[T]) Tail() uint8 {
	_, tail := store.Span[T](p.Head(), p.Len())
	return tail
}

// Cells returns the number of cells the region touches.
func (p BitPtr[T]) Cells() uint {
	cells, _ := store.Span[T](p.Head(), p.Len())
	return cells
}

// End returns the address one past the last touched cell. Owners use it to
// size allocations; it must never be dereferenced. The empty region reports 0.
func (p BitPtr[T]) End() uintptr {
	if p.IsEmpty() {
		return 0
	}
	return uintptr(p.ptr) + uintptr(p.Cells())*store.Size[T]()
}

// Raw decodes the descriptor into its (address, head, bits) triple.
func (p BitPtr[T]) Raw() (addr uintptr, head uint8, bits uint) {
	return uintptr(p.ptr), p.Head(), p.Len()
}

// AsCells returns the touched cells as a slice. Edge cells may hold bits
// that belong to other regions; go through an accessor to touch them.
func (p BitPtr[T]) AsCells() []T {
	return unsafe.Slice((*T)(p.ptr), p.Cells())
}

// Cell returns the i-th touched cell. i must be below Cells.
func (p BitPtr[T]) Cell(i uint) *T {
	return (*T)(unsafe.Add(p.ptr, uintptr(i)*store.Size[T]()))
}

// Locate returns the cell holding logical bit index and the bit's index
// inside that cell. index must be below Len.
func (p BitPtr[T]) Locate(index uint) (*T, uint8) {
	cells, bit := store.Offset[T](p.Head(), index)
	return p.Cell(cells), bit
}

// Slice returns the descriptor of bits [start, end).
func (p BitPtr[T]) Slice(start, end uint) (BitPtr[T], error) {
	if start > end || end > p.Len() {
		return BitPtr[T]{}, &ErrOutOfRange{Start: start, End: end, Len: p.Len()}
	}
	if start == end {
		return BitPtr[T]{}, nil
	}
	cells, head := store.Offset[T](p.Head(), start)
	return unchecked[T](unsafe.Add(p.ptr, uintptr(cells)*store.Size[T]()), head, end-start), nil
}

// SplitAt divides the region into [0, mid) and [mid, Len).
func (p BitPtr[T]) SplitAt(mid uint) (BitPtr[T], BitPtr[T], error) {
	if mid > p.Len() {
		return BitPtr[T]{}, BitPtr[T]{}, &ErrOutOfRange{Start: mid, End: mid, Len: p.Len()}
	}
	left, _ := p.Slice(0, mid)
	right, _ := p.Slice(mid, p.Len())
	return left, right, nil
}

func (p BitPtr[T]) String() string {
	return fmt.Sprintf("BitPtr<%s>{addr: %#x, head: %d, bits: %d}", store.Name[T](), uintptr(p.ptr), p.Head(), p.Len())
}

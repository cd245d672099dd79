package bitvec

import (
	"fmt"

	"github.com/hupe1980/bitvec/pointer"
)

// ErrInvalidRegion indicates a region that cannot be constructed.
type ErrInvalidRegion = pointer.ErrInvalidRegion

// ErrOutOfRange indicates a sub-slice or split point beyond the region.
type ErrOutOfRange = pointer.ErrOutOfRange

// ErrIndexOutOfBounds indicates a bit index at or beyond the region length.
type ErrIndexOutOfBounds struct {
	Index uint
	Len   uint
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("bit index %d out of bounds for region of %d bits", e.Index, e.Len)
}

// ErrWidthMismatch indicates a bitfield load or store whose integer type or
// value does not fit the region.
//
// Bits is the region length and Width the number of bits of the integer
// involved: the type width for a load, the significant bits of the value for
// a store.
type ErrWidthMismatch struct {
	Bits  uint
	Width uint
}

func (e *ErrWidthMismatch) Error() string {
	return fmt.Sprintf("bitfield width mismatch: region has %d bits, integer has %d", e.Bits, e.Width)
}

// ErrLengthMismatch indicates two regions that must have equal length but
// do not.
type ErrLengthMismatch struct {
	Expected uint
	Actual   uint
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d bits, got %d", e.Expected, e.Actual)
}

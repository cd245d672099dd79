package pointer

import "fmt"

// ErrInvalidRegion indicates a region that cannot be encoded: a head index
// outside the cell, a length beyond MaxBits or the address space, or a
// nil/misaligned base address.
type ErrInvalidRegion struct {
	Addr   uintptr
	Head   uint8
	Bits   uint
	Reason string
}

func (e *ErrInvalidRegion) Error() string {
	return fmt.Sprintf("invalid region (addr=%#x head=%d bits=%d): %s", e.Addr, e.Head, e.Bits, e.Reason)
}

// ErrOutOfRange indicates a sub-range [Start, End) that does not fit in a
// region of Len bits.
type ErrOutOfRange struct {
	Start uint
	End   uint
	Len   uint
}

func (e *ErrOutOfRange) Error() string {
	if e.Start > e.End {
		return fmt.Sprintf("range start %d is after end %d", e.Start, e.End)
	}
	return fmt.Sprintf("range end %d out of range for region of %d bits", e.End, e.Len)
}

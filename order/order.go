// Package order maps logical bit indices to physical bit positions.
//
// A Cursor is a pure, stateless function from a logical index inside one
// cell to the physical bit position it controls. For every supported cell
// width W it must be a bijection on [0, W): sweeping the logical index across
// the cell visits every physical bit exactly once. The library never checks
// this at runtime; Check exists for tests and for validating custom orderings
// once at startup.
//
// Two orderings are built in:
//
//	Msb0 (BigEndian):    logical 0 is the most significant bit
//	Lsb0 (LittleEndian): logical 0 is the least significant bit
//
// Local picks one of them from the byte order of the target.
package order

import (
	"fmt"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/bitvec/store"
)

// Cursor resolves a logical index within a cell to a physical position.
//
// Implementations must be usable through their zero value, since regions
// carry the cursor as a type parameter rather than as a field.
type Cursor interface {
	// At returns the physical position of logical index i in a cell of
	// the given width. i >= width is a contract breach and panics.
	At(i, width uint8) uint8
}

// Inverter is implemented by cursors that can map a physical position back
// to its logical index without scanning.
type Inverter interface {
	Index(pos, width uint8) uint8
}

// Msb0 orders bits from the most significant to the least significant.
type Msb0 struct{}

// At implements Cursor.
func (Msb0) At(i, width uint8) uint8 {
	mustIndex(i, width)
	return width - 1 - i
}

// Index implements Inverter.
func (Msb0) Index(pos, width uint8) uint8 {
	mustIndex(pos, width)
	return width - 1 - pos
}

func (Msb0) String() string { return "Msb0" }

// Lsb0 orders bits from the least significant to the most significant.
type Lsb0 struct{}

// At implements Cursor.
func (Lsb0) At(i, width uint8) uint8 {
	mustIndex(i, width)
	return i
}

// Index implements Inverter.
func (Lsb0) Index(pos, width uint8) uint8 {
	mustIndex(pos, width)
	return pos
}

func (Lsb0) String() string { return "Lsb0" }

// BigEndian is the traditional name for Msb0.
type BigEndian = Msb0

// LittleEndian is the traditional name for Lsb0.
type LittleEndian = Lsb0

// nativeMsb0 is true on big-endian targets.
var nativeMsb0 = cpu.IsBigEndian

// Local is Msb0 on big-endian targets and Lsb0 on little-endian targets.
type Local struct{}

// At implements Cursor.
func (Local) At(i, width uint8) uint8 {
	if nativeMsb0 {
		return Msb0{}.At(i, width)
	}
	return Lsb0{}.At(i, width)
}

// Index implements Inverter.
func (Local) Index(pos, width uint8) uint8 {
	if nativeMsb0 {
		return Msb0{}.Index(pos, width)
	}
	return Lsb0{}.Index(pos, width)
}

func (Local) String() string {
	if nativeMsb0 {
		return "Local(Msb0)"
	}
	return "Local(Lsb0)"
}

func mustIndex(i, width uint8) {
	if i >= width {
		panic(fmt.Sprintf("bitvec: bit index %d out of range for %d-bit cell", i, width))
	}
}

// resolve collapses Local into the built-in cursor it stands for, so the
// fast paths below only need to know two orderings.
func resolve(c Cursor) Cursor {
	if _, ok := c.(Local); ok {
		if nativeMsb0 {
			return Msb0{}
		}
		return Lsb0{}
	}
	return c
}

// Index maps a physical position back to the logical index that selects it.
func Index(c Cursor, pos, width uint8) uint8 {
	if inv, ok := c.(Inverter); ok {
		return inv.Index(pos, width)
	}
	mustIndex(pos, width)
	for i := uint8(0); i < width; i++ {
		if c.At(i, width) == pos {
			return i
		}
	}
	panic(fmt.Sprintf("bitvec: cursor %T is not a bijection on %d bits", c, width))
}

// Mask returns the single-bit mask selected by logical index i in a T cell.
func Mask[T store.Word](c Cursor, i uint8) T {
	return T(1) << c.At(i, store.Bits[T]())
}

// RangeMask returns the mask of the physical bits selected by the logical
// indices [from, to) of a T cell. from <= to <= W.
func RangeMask[T store.Word](c Cursor, from, to uint8) T {
	w := store.Bits[T]()
	if from > to || to > w {
		panic(fmt.Sprintf("bitvec: invalid bit range [%d, %d) for %d-bit cell", from, to, w))
	}
	n := to - from
	if n == 0 {
		return 0
	}
	switch resolve(c).(type) {
	case Msb0:
		return store.Low[T](n) << (w - to)
	case Lsb0:
		return store.Low[T](n) << from
	}
	var m T
	for i := from; i < to; i++ {
		m |= Mask[T](c, i)
	}
	return m
}

// MSBFirst reports whether logical index 0 selects the most significant
// bit of a cell. Bitfield loads and stores use it to decide which end of an
// integer the first logical bit carries.
func MSBFirst(c Cursor) bool {
	switch resolve(c).(type) {
	case Msb0:
		return true
	case Lsb0:
		return false
	}
	return c.At(0, 8) == 7
}

// Widths lists the supported cell widths.
var Widths = [...]uint8{8, 16, 32, 64}

// Check verifies that c is a bijection for every supported width, and that
// its Inverter, if any, agrees with At.
func Check(c Cursor) error {
	for _, w := range Widths {
		var seen [64]bool
		for i := uint8(0); i < w; i++ {
			pos := c.At(i, w)
			if pos >= w {
				return fmt.Errorf("cursor %T: index %d maps to position %d outside %d-bit cell", c, i, pos, w)
			}
			if seen[pos] {
				return fmt.Errorf("cursor %T: position %d visited twice in %d-bit cell", c, pos, w)
			}
			seen[pos] = true
			if inv, ok := c.(Inverter); ok {
				if back := inv.Index(pos, w); back != i {
					return fmt.Errorf("cursor %T: Index(%d) = %d, want %d in %d-bit cell", c, pos, back, i, w)
				}
			}
		}
	}
	return nil
}

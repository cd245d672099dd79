// Package access is the single path through which bit regions read and write
// storage cells.
//
// Two region handles may start at different bit offsets inside the same cell.
// If each performed its own plain read-modify-write, one handle's update
// could overwrite the other's. Every cell access therefore goes through an
// Accessor, which comes in two modes:
//
//   - Synchronized: every operation is a single indivisible read-modify-write
//     with sequentially consistent ordering. Concurrent masked writes to the
//     same cell compose without lost updates. 32 and 64 bit cells use
//     sync/atomic; 8 and 16 bit cells take a lock striped by cell address and
//     never touch the bytes around the cell.
//   - Exclusive: plain loads and stores. Mutating handles must then be
//     confined to one goroutine, or protected by external locking.
//
// The mode is picked when a region is constructed, not at compile time.
package access

import (
	"fmt"

	"github.com/hupe1980/bitvec/store"
)

// Mode selects the cell access strategy.
type Mode uint8

const (
	// Synchronized uses atomic read-modify-write for every cell access.
	Synchronized Mode = iota
	// Exclusive uses plain memory access. Not safe for concurrent writers.
	Exclusive
)

func (m Mode) String() string {
	switch m {
	case Synchronized:
		return "synchronized"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Accessor reads and writes T cells.
type Accessor[T store.Word] interface {
	// Mode reports the strategy this accessor implements.
	Mode() Mode
	// Load reads the whole cell.
	Load(cell *T) T
	// Store overwrites the whole cell.
	Store(cell *T, v T)
	// Write sets every bit selected by mask to bit and leaves the rest.
	Write(cell *T, mask T, bit bool)
	// Invert flips every bit selected by mask.
	Invert(cell *T, mask T)
	// Replace copies the bits of value selected by mask into the cell.
	Replace(cell *T, mask, value T)
}

// For returns the accessor for mode m. Unknown modes fall back to
// Synchronized.
func For[T store.Word](m Mode) Accessor[T] {
	if m == Exclusive {
		return exclusive[T]{}
	}
	return synchronized[T]{}
}

type exclusive[T store.Word] struct{}

func (exclusive[T]) Mode() Mode { return Exclusive }

func (exclusive[T]) Load(cell *T) T { return *cell }

func (exclusive[T]) Store(cell *T, v T) { *cell = v }

func (exclusive[T]) Write(cell *T, mask T, bit bool) {
	if bit {
		*cell |= mask
	} else {
		*cell &^= mask
	}
}

func (exclusive[T]) Invert(cell *T, mask T) { *cell ^= mask }

func (exclusive[T]) Replace(cell *T, mask, value T) {
	*cell = *cell&^mask | value&mask
}

package bitvec

import (
	"math/bits"
	"unsafe"

	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// Unsigned is the set of integer types a bitfield can be loaded into.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Load reads the region as a packed integer, the way a C bitfield is read.
//
// Under an MSB-first ordering the first logical bit of the region is the most
// significant bit of the result; under an LSB-first ordering it is the least
// significant. Custom orderings follow order.MSBFirst.
//
// Load fails with ErrWidthMismatch if U is narrower than the region. An empty
// region loads as zero.
func Load[U Unsigned, O order.Cursor, T store.Word](s Slice[O, T]) (U, error) {
	width := uint(unsafe.Sizeof(U(0))) * 8
	if s.Len() > width {
		return 0, &ErrWidthMismatch{Bits: s.Len(), Width: width}
	}
	if s.IsEmpty() {
		return 0, nil
	}
	return U(s.loadBits(0, s.Len())), nil
}

// Store writes v into the region as a packed integer. Bits outside the
// region are left untouched.
//
// Store fails with ErrWidthMismatch if U is narrower than the region, or if v
// has significant bits the region cannot hold. Values are never truncated.
func Store[U Unsigned, O order.Cursor, T store.Word](s Slice[O, T], v U) error {
	width := uint(unsafe.Sizeof(v)) * 8
	if s.Len() > width {
		return &ErrWidthMismatch{Bits: s.Len(), Width: width}
	}
	x := uint64(v)
	if s.Len() < 64 && x>>s.Len() != 0 {
		return &ErrWidthMismatch{Bits: s.Len(), Width: uint(bits.Len64(x))}
	}
	if s.IsEmpty() {
		return nil
	}
	s.storeBits(0, s.Len(), x)
	return nil
}

// window returns bits [start, start+n). Callers keep the range in bounds.
func (s Slice[O, T]) window(start, n uint) Slice[O, T] {
	p, err := s.ptr.Slice(start, start+n)
	if err != nil {
		panic(err)
	}
	return Slice[O, T]{ptr: p, acc: s.acc}
}

type layout uint8

const (
	layoutMsb0 layout = iota
	layoutLsb0
	layoutGeneric
)

func layoutOf(c order.Cursor) layout {
	switch c.(type) {
	case order.Msb0:
		return layoutMsb0
	case order.Lsb0:
		return layoutLsb0
	case order.Local:
		if order.MSBFirst(c) {
			return layoutMsb0
		}
		return layoutLsb0
	}
	return layoutGeneric
}

// low64 returns the n least significant bits set, for n in [1, 64].
func low64(n uint8) uint64 {
	return ^uint64(0) >> (64 - n)
}

// loadBits assembles bits [start, start+n) into an integer. n is in [1, 64]
// and the range lies inside the region.
func (s Slice[O, T]) loadBits(start, n uint) uint64 {
	sub := s.window(start, n)
	c, acc := s.cursor(), s.accessor()
	w := store.Bits[T]()

	var out uint64
	switch layoutOf(c) {
	case layoutMsb0:
		sub.walk(func(cell *T, from, to uint8, _ T) bool {
			l := to - from
			out = out<<l | uint64(acc.Load(cell)>>(w-to))&low64(l)
			return true
		})
	case layoutLsb0:
		var shift uint8
		sub.walk(func(cell *T, from, to uint8, _ T) bool {
			out |= (uint64(acc.Load(cell)>>from) & low64(to-from)) << shift
			shift += to - from
			return true
		})
	default:
		msb := order.MSBFirst(c)
		var k uint8
		sub.walk(func(cell *T, from, to uint8, _ T) bool {
			v := acc.Load(cell)
			for i := from; i < to; i++ {
				var b uint64
				if v&order.Mask[T](c, i) != 0 {
					b = 1
				}
				if msb {
					out = out<<1 | b
				} else {
					out |= b << k
				}
				k++
			}
			return true
		})
	}
	return out
}

// storeBits distributes the low n bits of v over [start, start+n). Each cell
// is written with a single masked replace.
func (s Slice[O, T]) storeBits(start, n uint, v uint64) {
	sub := s.window(start, n)
	c, acc := s.cursor(), s.accessor()
	w := store.Bits[T]()

	// consumed counts the bits already written, in logical order.
	var consumed uint8
	switch layoutOf(c) {
	case layoutMsb0:
		sub.walk(func(cell *T, from, to uint8, mask T) bool {
			l := to - from
			chunk := v >> (uint8(n) - consumed - l) & low64(l)
			acc.Replace(cell, mask, T(chunk)<<(w-to))
			consumed += l
			return true
		})
	case layoutLsb0:
		sub.walk(func(cell *T, from, to uint8, mask T) bool {
			l := to - from
			chunk := v >> consumed & low64(l)
			acc.Replace(cell, mask, T(chunk)<<from)
			consumed += l
			return true
		})
	default:
		msb := order.MSBFirst(c)
		sub.walk(func(cell *T, from, to uint8, mask T) bool {
			var word T
			for i := from; i < to; i++ {
				shift := consumed
				if msb {
					shift = uint8(n) - 1 - consumed
				}
				if v>>shift&1 != 0 {
					word |= order.Mask[T](c, i)
				}
				consumed++
			}
			acc.Replace(cell, mask, word)
			return true
		})
	}
}

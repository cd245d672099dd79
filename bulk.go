package bitvec

import (
	"iter"

	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// walk visits the cells of the region in logical order. from and to are the
// live logical indices of the cell and mask their physical bits; body cells
// report [0, W) with an all-ones mask. Returning false stops the walk.
func (s Slice[O, T]) walk(f func(cell *T, from, to uint8, mask T) bool) {
	d := s.Domain()
	if e, ok := d.Head(); ok {
		if !f(e.Cell, e.From, e.To, e.Mask) {
			return
		}
	}
	body := d.Body()
	w, ones := store.Bits[T](), store.Ones[T]()
	for i := range body {
		if !f(&body[i], 0, w, ones) {
			return
		}
	}
	if e, ok := d.Tail(); ok {
		f(e.Cell, e.From, e.To, e.Mask)
	}
}

// Fill sets every bit of the region to v.
func (s Slice[O, T]) Fill(v bool) {
	acc := s.accessor()
	d := s.Domain()
	if e, ok := d.Head(); ok {
		acc.Write(e.Cell, e.Mask, v)
	}
	var word T
	if v {
		word = store.Ones[T]()
	}
	body := d.Body()
	for i := range body {
		acc.Store(&body[i], word)
	}
	if e, ok := d.Tail(); ok {
		acc.Write(e.Cell, e.Mask, v)
	}
}

// CountOnes returns the number of set bits.
func (s Slice[O, T]) CountOnes() uint {
	acc := s.accessor()
	d := s.Domain()
	var n int
	if e, ok := d.Head(); ok {
		n += store.OnesCount(acc.Load(e.Cell) & e.Mask)
	}
	body := d.Body()
	for i := range body {
		n += store.OnesCount(acc.Load(&body[i]))
	}
	if e, ok := d.Tail(); ok {
		n += store.OnesCount(acc.Load(e.Cell) & e.Mask)
	}
	return uint(n)
}

// CountZeros returns the number of cleared bits.
func (s Slice[O, T]) CountZeros() uint {
	return s.Len() - s.CountOnes()
}

// Any reports whether at least one bit is set.
func (s Slice[O, T]) Any() bool {
	acc := s.accessor()
	found := false
	s.walk(func(cell *T, _, _ uint8, mask T) bool {
		found = acc.Load(cell)&mask != 0
		return !found
	})
	return found
}

// All reports whether every bit is set. It is true for an empty region.
func (s Slice[O, T]) All() bool {
	acc := s.accessor()
	all := true
	s.walk(func(cell *T, _, _ uint8, mask T) bool {
		all = acc.Load(cell)&mask == mask
		return all
	})
	return all
}

// NotAny reports whether every bit is cleared.
func (s Slice[O, T]) NotAny() bool {
	return !s.Any()
}

// NotAll reports whether at least one bit is cleared.
func (s Slice[O, T]) NotAll() bool {
	return !s.All()
}

// Not inverts every bit of the region.
func (s Slice[O, T]) Not() {
	acc := s.accessor()
	s.walk(func(cell *T, _, _ uint8, mask T) bool {
		acc.Invert(cell, mask)
		return true
	})
}

// ForEach calls f with every index and bit in order, and writes back the bit
// f returns. Each cell is read once before f sees its bits and written back
// at most once, after f has seen all of them.
func (s Slice[O, T]) ForEach(f func(i uint, bit bool) bool) {
	c, acc := s.cursor(), s.accessor()
	var base uint
	s.walk(func(cell *T, from, to uint8, mask T) bool {
		cur := acc.Load(cell)
		next := cur
		for i := from; i < to; i++ {
			m := order.Mask[T](c, i)
			if f(base+uint(i-from), cur&m != 0) {
				next |= m
			} else {
				next &^= m
			}
		}
		if next != cur {
			acc.Replace(cell, mask, next)
		}
		base += uint(to - from)
		return true
	})
}

// Bits iterates over every (index, bit) pair in order.
func (s Slice[O, T]) Bits() iter.Seq2[uint, bool] {
	return func(yield func(uint, bool) bool) {
		c, acc := s.cursor(), s.accessor()
		var base uint
		s.walk(func(cell *T, from, to uint8, _ T) bool {
			v := acc.Load(cell)
			for i := from; i < to; i++ {
				if !yield(base+uint(i-from), v&order.Mask[T](c, i) != 0) {
					return false
				}
			}
			base += uint(to - from)
			return true
		})
	}
}

// Ones iterates over the indices of set bits in ascending order. Cells with
// no live set bit are skipped whole.
func (s Slice[O, T]) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		c, acc := s.cursor(), s.accessor()
		var base uint
		s.walk(func(cell *T, from, to uint8, mask T) bool {
			if v := acc.Load(cell) & mask; v != 0 {
				for i := from; i < to; i++ {
					if v&order.Mask[T](c, i) != 0 && !yield(base+uint(i-from)) {
						return false
					}
				}
			}
			base += uint(to - from)
			return true
		})
	}
}

// FirstOne returns the index of the first set bit.
func (s Slice[O, T]) FirstOne() (uint, bool) {
	for i := range s.Ones() {
		return i, true
	}
	return 0, false
}

// LastOne returns the index of the last set bit. The domain is scanned from
// the tail backwards, one cell at a time.
func (s Slice[O, T]) LastOne() (uint, bool) {
	c, acc := s.cursor(), s.accessor()
	// end is the logical index one past the last live bit of the cell.
	end := s.Len()
	scan := func(cell *T, from, to uint8, mask T) (uint, bool) {
		v := acc.Load(cell) & mask
		if v != 0 {
			for i := to; i > from; i-- {
				if v&order.Mask[T](c, i-1) != 0 {
					return end - uint(to-i) - 1, true
				}
			}
		}
		end -= uint(to - from)
		return 0, false
	}

	d := s.Domain()
	if e, ok := d.Tail(); ok {
		if i, found := scan(e.Cell, e.From, e.To, e.Mask); found {
			return i, true
		}
	}
	body := d.Body()
	w, ones := store.Bits[T](), store.Ones[T]()
	for k := len(body) - 1; k >= 0; k-- {
		if i, found := scan(&body[k], 0, w, ones); found {
			return i, true
		}
	}
	if e, ok := d.Head(); ok {
		if i, found := scan(e.Cell, e.From, e.To, e.Mask); found {
			return i, true
		}
	}
	return 0, false
}

// Equal reports whether both regions hold the same bit sequence. Where the
// bits live is irrelevant.
func (s Slice[O, T]) Equal(other Slice[O, T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for start := uint(0); start < s.Len(); start += 64 {
		n := min(64, s.Len()-start)
		if s.loadBits(start, n) != other.loadBits(start, n) {
			return false
		}
	}
	return true
}

// CopyFrom copies the bits of src into s. Overlapping regions are handled
// like memmove.
func (s Slice[O, T]) CopyFrom(src Slice[O, T]) error {
	n := s.Len()
	if src.Len() != n {
		return &ErrLengthMismatch{Expected: n, Actual: src.Len()}
	}
	if n == 0 {
		return nil
	}

	dst, from := s.position(), src.position()
	if from < dst && dst < from+n {
		for end := n; end > 0; {
			k := min(64, end)
			s.storeBits(end-k, k, src.loadBits(end-k, k))
			end -= k
		}
		return nil
	}
	for start := uint(0); start < n; start += 64 {
		k := min(64, n-start)
		s.storeBits(start, k, src.loadBits(start, k))
	}
	return nil
}

// position is the absolute bit number of the first bit, counting W bits per
// cell from address zero. It orders regions over the same memory.
func (s Slice[O, T]) position() uint {
	addr, head, _ := s.ptr.Raw()
	return uint(addr)/uint(store.Size[T]())*uint(store.Bits[T]()) + uint(head)
}

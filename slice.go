package bitvec

import (
	"github.com/hupe1980/bitvec/access"
	"github.com/hupe1980/bitvec/domain"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/pointer"
	"github.com/hupe1980/bitvec/store"
)

// Slice is a handle to a contiguous run of bits inside T cells, read in the
// order defined by O.
//
// A Slice is a value: slicing and splitting return new handles and never touch
// memory. It borrows its cells; the caller keeps them alive. Every cell access
// goes through the accessor chosen at construction (see WithAccess).
//
// The zero Slice is an empty region.
type Slice[O order.Cursor, T store.Word] struct {
	ptr pointer.BitPtr[T]
	acc access.Accessor[T]
}

// New returns a region covering every bit of cells.
func New[O order.Cursor, T store.Word](cells []T, opts ...Option) (Slice[O, T], error) {
	p, err := pointer.FromCells(cells)
	if err != nil {
		return Slice[O, T]{}, err
	}
	return FromPtr[O](p, opts...), nil
}

// FromParts returns the region of bits bits starting at bit head of the
// cell at base.
func FromParts[O order.Cursor, T store.Word](base *T, head uint8, bits uint, opts ...Option) (Slice[O, T], error) {
	p, err := pointer.New(base, head, bits)
	if err != nil {
		return Slice[O, T]{}, err
	}
	return FromPtr[O](p, opts...), nil
}

// FromRaw returns the region covering n cells starting at base. Owners of
// memory that is not a Go slice (for example an mmap'd range) use it.
func FromRaw[O order.Cursor, T store.Word](base *T, n int, opts ...Option) (Slice[O, T], error) {
	p, err := pointer.FromRaw(base, n)
	if err != nil {
		return Slice[O, T]{}, err
	}
	return FromPtr[O](p, opts...), nil
}

// FromPtr wraps an already validated descriptor.
func FromPtr[O order.Cursor, T store.Word](p pointer.BitPtr[T], opts ...Option) Slice[O, T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Slice[O, T]{ptr: p, acc: access.For[T](o.mode)}
}

func (s Slice[O, T]) accessor() access.Accessor[T] {
	if s.acc == nil {
		return access.For[T](access.Synchronized)
	}
	return s.acc
}

func (s Slice[O, T]) cursor() order.Cursor {
	var o O
	return o
}

// Len returns the number of bits in the region.
func (s Slice[O, T]) Len() uint {
	return s.ptr.Len()
}

// IsEmpty reports whether the region has no bits.
func (s Slice[O, T]) IsEmpty() bool {
	return s.ptr.IsEmpty()
}

// Ptr returns the packed descriptor of the region.
func (s Slice[O, T]) Ptr() pointer.BitPtr[T] {
	return s.ptr
}

// Mode returns the access mode the region was built with.
func (s Slice[O, T]) Mode() access.Mode {
	return s.accessor().Mode()
}

// Domain classifies the region into head, body and tail cells.
func (s Slice[O, T]) Domain() domain.Domain[T] {
	return domain.Classify(s.cursor(), s.ptr)
}

func (s Slice[O, T]) checkIndex(i uint) error {
	if i >= s.Len() {
		return &ErrIndexOutOfBounds{Index: i, Len: s.Len()}
	}
	return nil
}

// locate returns the cell and single-bit mask of logical index i.
func (s Slice[O, T]) locate(i uint) (*T, T) {
	cell, idx := s.ptr.Locate(i)
	return cell, order.Mask[T](s.cursor(), idx)
}

func (s Slice[O, T]) bit(i uint) bool {
	cell, mask := s.locate(i)
	return s.accessor().Load(cell)&mask != 0
}

func (s Slice[O, T]) setBit(i uint, v bool) {
	cell, mask := s.locate(i)
	s.accessor().Write(cell, mask, v)
}

// Get returns bit i.
func (s Slice[O, T]) Get(i uint) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, err
	}
	return s.bit(i), nil
}

// Set writes bit i.
func (s Slice[O, T]) Set(i uint, v bool) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.setBit(i, v)
	return nil
}

// Toggle inverts bit i.
func (s Slice[O, T]) Toggle(i uint) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	cell, mask := s.locate(i)
	s.accessor().Invert(cell, mask)
	return nil
}

// Replace writes bit i and returns its previous value. The read and the
// write are separate accesses.
func (s Slice[O, T]) Replace(i uint, v bool) (bool, error) {
	if err := s.checkIndex(i); err != nil {
		return false, err
	}
	prev := s.bit(i)
	if prev != v {
		s.setBit(i, v)
	}
	return prev, nil
}

// Swap exchanges bits i and j. The exchange is two separate writes, not one
// atomic step.
func (s Slice[O, T]) Swap(i, j uint) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	if err := s.checkIndex(j); err != nil {
		return err
	}
	a, b := s.bit(i), s.bit(j)
	if a != b {
		s.setBit(i, b)
		s.setBit(j, a)
	}
	return nil
}

// Slice returns the sub-region [start, end).
func (s Slice[O, T]) Slice(start, end uint) (Slice[O, T], error) {
	p, err := s.ptr.Slice(start, end)
	if err != nil {
		return Slice[O, T]{}, err
	}
	return Slice[O, T]{ptr: p, acc: s.acc}, nil
}

// SplitAt divides the region into [0, mid) and [mid, Len).
func (s Slice[O, T]) SplitAt(mid uint) (Slice[O, T], Slice[O, T], error) {
	l, r, err := s.ptr.SplitAt(mid)
	if err != nil {
		return Slice[O, T]{}, Slice[O, T]{}, err
	}
	return Slice[O, T]{ptr: l, acc: s.acc}, Slice[O, T]{ptr: r, acc: s.acc}, nil
}

// Reinterpret views the same bits through cursor P without copying.
//
// The view only means the same thing when O and P agree on every physical
// position used by the region; for different orderings the bits are
// reinterpreted, not moved. No runtime check is made.
func Reinterpret[P order.Cursor, O order.Cursor, T store.Word](s Slice[O, T]) Slice[P, T] {
	return Slice[P, T]{ptr: s.ptr, acc: s.acc}
}

package mapped

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/mmap"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/pointer"
	"github.com/hupe1980/bitvec/store"
)

// ErrClosed is returned when using cells after Close.
var ErrClosed = mmap.ErrClosed

// ErrReadOnly is returned when syncing cells opened with OpenReadOnly.
var ErrReadOnly = mmap.ErrReadOnly

// Cells is an off-heap array of n cells of type T.
type Cells[T store.Word] struct {
	m      *mmap.Mapping
	cells  []T
	closed atomic.Bool
}

func wrap[T store.Word](m *mmap.Mapping) *Cells[T] {
	c := &Cells[T]{m: m}
	if data := m.Bytes(); len(data) > 0 {
		c.cells = unsafe.Slice((*T)(unsafe.Pointer(&data[0])), len(data)/int(store.Size[T]()))
	}
	return c
}

func byteSize[T store.Word](n int) (int, error) {
	size := int(store.Size[T]())
	if n < 0 || n > math.MaxInt/size {
		return 0, fmt.Errorf("mapped: invalid cell count %d", n)
	}
	return n * size, nil
}

// Anon allocates n zeroed cells in an anonymous mapping.
func Anon[T store.Word](n int) (*Cells[T], error) {
	size, err := byteSize[T](n)
	if err != nil {
		return nil, err
	}
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	return wrap[T](m), nil
}

// OpenFile maps n cells of the file at path read-write, creating the file or
// growing it with zero cells as needed.
func OpenFile[T store.Word](path string, n int) (*Cells[T], error) {
	size, err := byteSize[T](n)
	if err != nil {
		return nil, err
	}
	m, err := mmap.OpenWritable(path, size)
	if err != nil {
		return nil, err
	}
	return wrap[T](m), nil
}

// OpenReadOnly maps every cell of the file at path read-only. The file size
// must be a multiple of the cell size. Writing through a region over these
// cells faults.
func OpenReadOnly[T store.Word](path string) (*Cells[T], error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	if rem := m.Size() % int(store.Size[T]()); rem != 0 {
		return nil, errors.Join(
			fmt.Errorf("mapped: %s: size %d is not a multiple of %d-byte cells", path, m.Size(), store.Size[T]()),
			m.Close(),
		)
	}
	if err := m.Advise(mmap.AccessRandom); err != nil {
		return nil, errors.Join(err, m.Close())
	}
	return wrap[T](m), nil
}

// Cells returns the cells. The slice is nil after Close.
func (c *Cells[T]) Cells() []T {
	if c.closed.Load() {
		return nil
	}
	return c.cells
}

// Len returns the number of cells.
func (c *Cells[T]) Len() int {
	return len(c.cells)
}

// Writable reports whether the cells may be written.
func (c *Cells[T]) Writable() bool {
	return c.m.Writable()
}

// Sync flushes file-backed cells to disk.
func (c *Cells[T]) Sync() error {
	return c.m.Sync()
}

// Close releases the mapping. It is idempotent.
func (c *Cells[T]) Close() error {
	c.closed.Store(true)
	return c.m.Close()
}

// Region returns a region over every bit of c.
func Region[O order.Cursor, T store.Word](c *Cells[T], opts ...bitvec.Option) (bitvec.Slice[O, T], error) {
	if c.closed.Load() {
		return bitvec.Slice[O, T]{}, ErrClosed
	}
	if len(c.cells) == 0 {
		return bitvec.FromPtr[O](pointer.BitPtr[T]{}, opts...), nil
	}
	return bitvec.FromRaw[O](&c.cells[0], len(c.cells), opts...)
}

package access

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/bitvec/store"
)

// sync/atomic has no 8 or 16 bit operations. Narrow cells are guarded by a
// striped lock chosen from the cell address, so a read-modify-write touches
// the target cell only and never the bytes beside it. Every synchronized
// accessor of the same cell maps to the same stripe.

// numStripes is a power of two.
const numStripes = 64

type stripe struct {
	sync.Mutex
	_ [56]byte // pad to a cache line
}

var stripes [numStripes]stripe

func stripeFor(p unsafe.Pointer) *stripe {
	a := uintptr(p)
	return &stripes[(a^a>>6)&(numStripes-1)]
}

type synchronized[T store.Word] struct{}

func (synchronized[T]) Mode() Mode { return Synchronized }

func (synchronized[T]) Load(cell *T) T {
	switch p := any(cell).(type) {
	case *uint64:
		return T(atomic.LoadUint64(p))
	case *uint32:
		return T(atomic.LoadUint32(p))
	default:
		l := stripeFor(unsafe.Pointer(cell))
		l.Lock()
		v := *cell
		l.Unlock()
		return v
	}
}

func (synchronized[T]) Store(cell *T, v T) {
	switch p := any(cell).(type) {
	case *uint64:
		atomic.StoreUint64(p, uint64(v))
	case *uint32:
		atomic.StoreUint32(p, uint32(v))
	default:
		l := stripeFor(unsafe.Pointer(cell))
		l.Lock()
		*cell = v
		l.Unlock()
	}
}

func (synchronized[T]) Write(cell *T, mask T, bit bool) {
	switch p := any(cell).(type) {
	case *uint64:
		if bit {
			atomic.OrUint64(p, uint64(mask))
		} else {
			atomic.AndUint64(p, ^uint64(mask))
		}
	case *uint32:
		if bit {
			atomic.OrUint32(p, uint32(mask))
		} else {
			atomic.AndUint32(p, ^uint32(mask))
		}
	default:
		update(cell, func(old T) T {
			if bit {
				return old | mask
			}
			return old &^ mask
		})
	}
}

func (synchronized[T]) Invert(cell *T, mask T) {
	update(cell, func(old T) T { return old ^ mask })
}

func (synchronized[T]) Replace(cell *T, mask, value T) {
	update(cell, func(old T) T { return old&^mask | value&mask })
}

// update applies f to the cell as one indivisible step.
func update[T store.Word](cell *T, f func(T) T) {
	switch p := any(cell).(type) {
	case *uint64:
		for {
			old := atomic.LoadUint64(p)
			if atomic.CompareAndSwapUint64(p, old, uint64(f(T(old)))) {
				return
			}
		}
	case *uint32:
		for {
			old := atomic.LoadUint32(p)
			if atomic.CompareAndSwapUint32(p, old, uint32(f(T(old)))) {
				return
			}
		}
	default:
		l := stripeFor(unsafe.Pointer(cell))
		l.Lock()
		*cell = f(*cell)
		l.Unlock()
	}
}

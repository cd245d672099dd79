package pointer

import (
	"errors"
	"math/rand"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/store"
)

func TestHandleIsTwoWords(t *testing.T) {
	assert.Equal(t, 2*unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(BitPtr[uint8]{}))
	assert.Equal(t, 2*unsafe.Sizeof(uintptr(0)), unsafe.Sizeof(BitPtr[uint64]{}))
}

func roundTrip[T store.Word](t *testing.T, rng *rand.Rand) {
	t.Helper()
	cells := make([]T, 64)
	w := uint(store.Bits[T]())
	for i := 0; i < 500; i++ {
		base := rng.Intn(len(cells))
		head := uint8(rng.Intn(int(w)))
		room := uint(len(cells)-base)*w - uint(head)
		bits := uint(rng.Int63n(int64(room))) + 1

		p, err := New(&cells[base], head, bits)
		require.NoError(t, err)

		addr, gotHead, gotBits := p.Raw()
		assert.Equal(t, uintptr(unsafe.Pointer(&cells[base])), addr)
		assert.Equal(t, head, gotHead)
		assert.Equal(t, bits, gotBits)
		assert.Equal(t, &cells[base], p.Pointer())

		wantCells := (uint(head) + bits + w - 1) / w
		assert.Equal(t, wantCells, p.Cells())
		assert.Equal(t, addr+uintptr(wantCells)*store.Size[T](), p.End())
		assert.Len(t, p.AsCells(), int(wantCells))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	roundTrip[uint8](t, rng)
	roundTrip[uint16](t, rng)
	roundTrip[uint32](t, rng)
	roundTrip[uint64](t, rng)
}

func TestDistinctTriplesDoNotCollide(t *testing.T) {
	cells := make([]uint8, 4)
	seen := map[BitPtr[uint8]][3]uint{}
	for base := 0; base < len(cells); base++ {
		for head := uint8(0); head < 8; head++ {
			for bits := uint(1); bits <= uint(len(cells)-base)*8-uint(head); bits++ {
				p, err := New(&cells[base], head, bits)
				require.NoError(t, err)
				triple := [3]uint{uint(base), uint(head), bits}
				if prev, ok := seen[p]; ok {
					t.Fatalf("%v and %v encode identically", prev, triple)
				}
				seen[p] = triple
			}
		}
	}
}

func TestEmptyIsCanonical(t *testing.T) {
	a := []uint16{1, 2, 3}
	b := []uint16{4}

	pa, err := New(&a[2], 5, 0)
	require.NoError(t, err)
	pb, err := New(&b[0], 0, 0)
	require.NoError(t, err)
	pn, err := New[uint16](nil, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, pa, pb)
	assert.Equal(t, pa, pn)
	assert.True(t, pa == BitPtr[uint16]{})
	assert.True(t, pa.IsEmpty())
	assert.Equal(t, uint(0), pa.Cells())
	assert.Equal(t, uintptr(0), pa.End())
	assert.Empty(t, pa.AsCells())

	full, err := FromCells(a)
	require.NoError(t, err)
	s1, err := full.Slice(3, 3)
	require.NoError(t, err)
	s2, err := full.Slice(48, 48)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.Equal(t, pa, s1)
}

func TestNewRejectsInvalid(t *testing.T) {
	cells := make([]uint32, 2)

	_, err := New(&cells[0], 32, 1)
	var ir *ErrInvalidRegion
	require.True(t, errors.As(err, &ir))
	assert.Equal(t, uint8(32), ir.Head)

	_, err = New[uint32](nil, 0, 5)
	require.True(t, errors.As(err, &ir))

	_, err = New(&cells[0], 0, MaxBits[uint32]()+1)
	require.True(t, errors.As(err, &ir))

	raw := make([]byte, 16)
	_, err = New(misaligned(raw), 0, 8)
	require.True(t, errors.As(err, &ir))

	_, err = FromRaw(&cells[0], -1)
	require.True(t, errors.As(err, &ir))
}

//go:nocheckptr
func misaligned(raw []byte) *uint32 {
	return (*uint32)(unsafe.Add(unsafe.Pointer(&raw[0]), 1))
}

func TestTailAtCellBoundary(t *testing.T) {
	cells := make([]uint8, 2)
	p, err := New(&cells[0], 0, 8)
	require.NoError(t, err)
	assert.Equal(t, uint8(8), p.Tail())
	assert.Equal(t, uint(1), p.Cells())

	p, err = New(&cells[0], 6, 4)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), p.Tail())
	assert.Equal(t, uint(2), p.Cells())
}

func TestSliceAndSplit(t *testing.T) {
	cells := make([]uint8, 4)
	p, err := New(&cells[0], 3, 27)
	require.NoError(t, err)

	s, err := p.Slice(5, 20)
	require.NoError(t, err)
	assert.Equal(t, uint(15), s.Len())
	assert.Equal(t, &cells[1], s.Pointer())
	assert.Equal(t, uint8(0), s.Head())

	s, err = p.Slice(2, 3)
	require.NoError(t, err)
	assert.Equal(t, &cells[0], s.Pointer())
	assert.Equal(t, uint8(5), s.Head())

	cell, bit := p.Locate(13)
	assert.Equal(t, &cells[2], cell)
	assert.Equal(t, uint8(0), bit)

	left, right, err := p.SplitAt(10)
	require.NoError(t, err)
	assert.Equal(t, uint(10), left.Len())
	assert.Equal(t, uint(17), right.Len())
	assert.Equal(t, &cells[1], right.Pointer())
	assert.Equal(t, uint8(5), right.Head())

	left, right, err = p.SplitAt(27)
	require.NoError(t, err)
	assert.Equal(t, p, left)
	assert.True(t, right.IsEmpty())

	var oor *ErrOutOfRange
	_, err = p.Slice(4, 3)
	require.True(t, errors.As(err, &oor))
	assert.Contains(t, err.Error(), "after end")
	_, err = p.Slice(0, 28)
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, uint(27), oor.Len)
	_, _, err = p.SplitAt(28)
	require.True(t, errors.As(err, &oor))
}

func TestString(t *testing.T) {
	assert.Equal(t, "BitPtr<u8>{addr: 0x0, head: 0, bits: 0}", BitPtr[uint8]{}.String())
}

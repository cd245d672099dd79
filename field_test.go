package bitvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
	"github.com/hupe1980/bitvec/testutil"
)

func TestStoreInsideOneByte(t *testing.T) {
	cells := []uint8{0}
	s, err := New[order.Msb0](cells)
	require.NoError(t, err)
	field, err := s.Slice(4, 8)
	require.NoError(t, err)

	require.NoError(t, Store(field, uint8(0b1011)))
	assert.Equal(t, uint8(0b0000_1011), cells[0])

	bit, err := field.Get(0)
	require.NoError(t, err)
	assert.True(t, bit)

	v, err := Load[uint8](field)
	require.NoError(t, err)
	assert.Equal(t, uint8(0b1011), v)
}

func TestStoreAcrossBytes(t *testing.T) {
	cells := []uint8{0, 0}
	s, err := New[order.Msb0](cells)
	require.NoError(t, err)
	field, err := s.Slice(6, 10)
	require.NoError(t, err)

	require.NoError(t, Store(field, uint8(0b1111)))
	assert.Equal(t, []uint8{0b0000_0011, 0b1100_0000}, cells)
}

func TestStoreLsb0(t *testing.T) {
	cells := []uint16{0, 0}
	s, err := New[order.Lsb0](cells)
	require.NoError(t, err)
	field, err := s.Slice(12, 20)
	require.NoError(t, err)

	require.NoError(t, Store(field, uint8(0xa5)))
	assert.Equal(t, []uint16{0x5000, 0x000a}, cells)

	v, err := Load[uint32](field)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xa5), v)
}

func TestStorePreservesNeighbours(t *testing.T) {
	cells := []uint32{0xffffffff, 0xffffffff}
	s, err := New[order.Msb0](cells)
	require.NoError(t, err)
	field, err := s.Slice(20, 44)
	require.NoError(t, err)

	require.NoError(t, Store(field, uint32(0)))
	assert.Equal(t, []uint32{0xfffff000, 0x000fffff}, cells)
}

func TestWidthMismatch(t *testing.T) {
	s, err := New[order.Msb0](make([]uint8, 3))
	require.NoError(t, err)
	field, err := s.Slice(0, 9)
	require.NoError(t, err)

	_, err = Load[uint8](field)
	var mismatch *ErrWidthMismatch
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, uint(9), mismatch.Bits)
	assert.Equal(t, uint(8), mismatch.Width)

	err = Store(field, uint8(1))
	assert.True(t, errors.As(err, &mismatch))

	small, err := s.Slice(0, 4)
	require.NoError(t, err)
	err = Store(small, uint8(0x1f))
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, uint(5), mismatch.Width)
	assert.Equal(t, []uint8{0, 0, 0}, s.Ptr().AsCells())
}

func TestEmptyField(t *testing.T) {
	var s Slice[order.Lsb0, uint64]

	v, err := Load[uint16](s)
	require.NoError(t, err)
	assert.Zero(t, v)

	assert.NoError(t, Store(s, uint16(0)))
	assert.Error(t, Store(s, uint16(1)))
}

func testFieldRoundTrip[O order.Cursor, T store.Word](t *testing.T) {
	var o O
	rng := testutil.NewRNG(3)
	msb := order.MSBFirst(o)

	for range 300 {
		cells := testutil.RandomCells[T](rng, 20)
		s, err := New[O](cells)
		require.NoError(t, err)

		n := uint(rng.Intn(64) + 1)
		start := uint(rng.Intn(int(s.Len() - n + 1)))
		if rng.Intn(4) == 0 {
			start -= start % uint(store.Bits[T]())
		}
		field, err := s.Slice(start, start+n)
		require.NoError(t, err)

		before := testutil.Decode(o, cells, 0, s.Len())
		got, err := Load[uint64](field)
		require.NoError(t, err)
		require.Equal(t, testutil.Uint(before[start:start+n], msb), got)

		v := rng.Uint64()
		if n < 64 {
			v &= 1<<n - 1
		}
		require.NoError(t, Store(field, v))

		got, err = Load[uint64](field)
		require.NoError(t, err)
		require.Equal(t, v, got, "start=%d n=%d", start, n)

		after := testutil.Decode(o, cells, 0, s.Len())
		require.Equal(t, before[:start], after[:start])
		require.Equal(t, before[start+n:], after[start+n:])
	}
}

func TestFieldRoundTrip(t *testing.T) {
	t.Run("Msb0/u8", testFieldRoundTrip[order.Msb0, uint8])
	t.Run("Lsb0/u8", testFieldRoundTrip[order.Lsb0, uint8])
	t.Run("Msb0/u16", testFieldRoundTrip[order.Msb0, uint16])
	t.Run("Lsb0/u32", testFieldRoundTrip[order.Lsb0, uint32])
	t.Run("Msb0/u64", testFieldRoundTrip[order.Msb0, uint64])
	t.Run("Local/u64", testFieldRoundTrip[order.Local, uint64])
	t.Run("rev4/u16", testFieldRoundTrip[rev4, uint16])
}

func TestFieldCustomTypes(t *testing.T) {
	type flags uint16

	s, err := New[order.Msb0](make([]uint8, 2))
	require.NoError(t, err)
	field, err := s.Slice(3, 13)
	require.NoError(t, err)

	require.NoError(t, Store(field, flags(0x2a5)))
	v, err := Load[flags](field)
	require.NoError(t, err)
	assert.Equal(t, flags(0x2a5), v)

	w, err := Load[uint](field)
	require.NoError(t, err)
	assert.Equal(t, uint(0x2a5), w)
}

package bitmap

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/testutil"
)

func TestToBitmap(t *testing.T) {
	s, err := bitvec.New[order.Msb0]([]uint8{0b1010_0000, 0b0000_0001})
	require.NoError(t, err)

	bm, err := ToBitmap(s)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 2, 15}, bm.ToArray())
}

func TestBitmapRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(3)
	src, err := bitvec.New[order.Lsb0](testutil.RandomCells[uint32](rng, 50))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		start, end := rng.Range(src.Len())
		from, err := src.Slice(start, end)
		require.NoError(t, err)

		bm, err := ToBitmap(from)
		require.NoError(t, err)
		assert.Equal(t, uint64(from.CountOnes()), bm.GetCardinality())

		dst, err := bitvec.New[order.Lsb0](testutil.RandomCells[uint32](rng, 50))
		require.NoError(t, err)
		to, err := dst.Slice(0, from.Len())
		require.NoError(t, err)

		require.NoError(t, FromBitmap(to, bm))
		assert.True(t, to.Equal(from), "range [%d, %d)", start, end)
	}
}

func TestFromBitmapOutOfRange(t *testing.T) {
	cells := []uint16{0xffff}
	s, err := bitvec.New[order.Msb0](cells)
	require.NoError(t, err)

	err = FromBitmap(s, roaring.BitmapOf(1, 16))
	var oob *bitvec.ErrIndexOutOfBounds
	require.ErrorAs(t, err, &oob)
	assert.Equal(t, uint(16), oob.Index)
	assert.Equal(t, uint16(0xffff), cells[0])
}

func TestFromBitmapEmpty(t *testing.T) {
	cells := []uint8{0xff}
	s, err := bitvec.New[order.Lsb0](cells)
	require.NoError(t, err)

	require.NoError(t, FromBitmap(s, roaring.New()))
	assert.Zero(t, cells[0])
}

func TestBitSet(t *testing.T) {
	cells := []uint64{0x8000_0000_0000_0001, 0x2}
	s, err := bitvec.New[order.Lsb0](cells)
	require.NoError(t, err)

	b := ToBitSet(s)
	assert.Equal(t, uint(128), b.Len())
	assert.Equal(t, uint(3), b.Count())
	assert.True(t, b.Test(0))
	assert.True(t, b.Test(63))
	assert.True(t, b.Test(65))

	out := make([]uint64, 2)
	d, err := bitvec.New[order.Lsb0](out)
	require.NoError(t, err)
	require.NoError(t, FromBitSet(d, b))
	assert.Equal(t, cells, out)
}

func TestFromBitSetOutOfRange(t *testing.T) {
	s, err := bitvec.New[order.Msb0](make([]uint8, 1))
	require.NoError(t, err)

	b := bitset.New(16)
	b.Set(3).Set(9)

	var oob *bitvec.ErrIndexOutOfBounds
	require.ErrorAs(t, FromBitSet(s, b), &oob)
	assert.Equal(t, uint(9), oob.Index)
}

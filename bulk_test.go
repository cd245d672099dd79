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

func countTrue(bits []bool) uint {
	var n uint
	for _, b := range bits {
		if b {
			n++
		}
	}
	return n
}

func testBulk[O order.Cursor, T store.Word](t *testing.T) {
	var o O
	rng := testutil.NewRNG(7)

	for range 100 {
		cells := testutil.RandomCells[T](rng, 5)
		s, err := New[O](cells)
		require.NoError(t, err)
		a, b := rng.Range(s.Len())
		sub, err := s.Slice(a, b)
		require.NoError(t, err)
		want := testutil.Decode(o, cells, 0, s.Len())

		require.Equal(t, countTrue(want[a:b]), sub.CountOnes())
		require.Equal(t, (b-a)-countTrue(want[a:b]), sub.CountZeros())

		var ones []uint
		for i := a; i < b; i++ {
			if want[i] {
				ones = append(ones, i-a)
			}
		}
		var got []uint
		for i := range sub.Ones() {
			got = append(got, i)
		}
		require.Equal(t, ones, got)

		first, ok := sub.FirstOne()
		require.Equal(t, len(ones) > 0, ok)
		last, ok := sub.LastOne()
		require.Equal(t, len(ones) > 0, ok)
		if len(ones) > 0 {
			require.Equal(t, ones[0], first)
			require.Equal(t, ones[len(ones)-1], last)
		}

		sub.Not()
		for i := a; i < b; i++ {
			want[i] = !want[i]
		}
		require.Equal(t, want, testutil.Decode(o, cells, 0, s.Len()))

		v := rng.Intn(2) == 1
		sub.Fill(v)
		for i := a; i < b; i++ {
			want[i] = v
		}
		require.Equal(t, want, testutil.Decode(o, cells, 0, s.Len()))
		require.Equal(t, v || a == b, sub.All())
		require.Equal(t, v && a < b, sub.Any())
	}
}

func TestBulk(t *testing.T) {
	t.Run("Msb0/u8", testBulk[order.Msb0, uint8])
	t.Run("Lsb0/u16", testBulk[order.Lsb0, uint16])
	t.Run("Msb0/u32", testBulk[order.Msb0, uint32])
	t.Run("Lsb0/u64", testBulk[order.Lsb0, uint64])
	t.Run("rev4/u8", testBulk[rev4, uint8])
}

func TestPredicates(t *testing.T) {
	cells := []uint8{0b0001_1000}
	s, err := New[order.Msb0](cells)
	require.NoError(t, err)

	assert.True(t, s.Any())
	assert.False(t, s.All())
	assert.False(t, s.NotAny())
	assert.True(t, s.NotAll())

	mid, err := s.Slice(3, 5)
	require.NoError(t, err)
	assert.True(t, mid.All())
	assert.False(t, mid.NotAll())

	edge, err := s.Slice(0, 3)
	require.NoError(t, err)
	assert.True(t, edge.NotAny())

	var empty Slice[order.Msb0, uint8]
	assert.True(t, empty.All())
	assert.False(t, empty.Any())
}

func TestForEach(t *testing.T) {
	cells := make([]uint16, 2)
	s, err := New[order.Lsb0](cells)
	require.NoError(t, err)
	sub, err := s.Slice(10, 22)
	require.NoError(t, err)

	var seen []uint
	sub.ForEach(func(i uint, bit bool) bool {
		assert.False(t, bit)
		seen = append(seen, i)
		return i%2 == 0
	})

	assert.Len(t, seen, 12)
	assert.Equal(t, uint16(0b0101_0100_0000_0000), cells[0])
	assert.Equal(t, uint16(0b01_0101), cells[1])
}

func testForEachModel[O order.Cursor, T store.Word](t *testing.T) {
	var o O
	rng := testutil.NewRNG(11)

	for range 50 {
		cells := testutil.RandomCells[T](rng, 4)
		s, err := New[O](cells)
		require.NoError(t, err)
		a, b := rng.Range(s.Len())
		sub, err := s.Slice(a, b)
		require.NoError(t, err)
		want := testutil.Decode(o, cells, 0, s.Len())

		var next uint
		sub.ForEach(func(i uint, bit bool) bool {
			require.Equal(t, next, i)
			require.Equal(t, want[a+i], bit)
			next++
			if i%3 == 0 {
				return !bit
			}
			return bit
		})
		require.Equal(t, b-a, next)

		for i := a; i < b; i++ {
			if (i-a)%3 == 0 {
				want[i] = !want[i]
			}
		}
		require.Equal(t, want, testutil.Decode(o, cells, 0, s.Len()))
	}
}

func TestForEachModel(t *testing.T) {
	t.Run("Msb0/u8", testForEachModel[order.Msb0, uint8])
	t.Run("Lsb0/u32", testForEachModel[order.Lsb0, uint32])
	t.Run("rev4/u16", testForEachModel[rev4, uint16])
}

func TestLastOneKinds(t *testing.T) {
	cells := []uint8{0b1000_0000, 0, 0, 0b0000_0001}
	s, err := New[order.Msb0](cells)
	require.NoError(t, err)

	cases := []struct {
		name       string
		start, end uint
		want       uint
		found      bool
	}{
		{"whole", 0, 32, 31, true},
		{"tail only", 9, 32, 22, true},
		{"body only", 0, 24, 0, true},
		{"minor", 1, 7, 0, false},
		{"empty", 5, 5, 0, false},
		{"spans body", 3, 30, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := s.Slice(tc.start, tc.end)
			require.NoError(t, err)
			got, ok := sub.LastOne()
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBitsEarlyStop(t *testing.T) {
	s, err := New[order.Msb0]([]uint8{0xff, 0xff})
	require.NoError(t, err)

	n := 0
	for range s.Bits() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	n = 0
	for range s.Ones() {
		n++
		if n == 9 {
			break
		}
	}
	assert.Equal(t, 9, n)
}

func TestEqual(t *testing.T) {
	a, err := New[order.Msb0]([]uint8{0b1011_0000, 0})
	require.NoError(t, err)
	b, err := New[order.Msb0]([]uint8{0, 0b0001_0110})
	require.NoError(t, err)

	x, _ := a.Slice(0, 4)
	y, _ := b.Slice(11, 15)
	assert.True(t, x.Equal(y))

	z, _ := b.Slice(10, 14)
	assert.False(t, x.Equal(z))

	w, _ := b.Slice(11, 14)
	assert.False(t, x.Equal(w))
}

func testCopyFrom[O order.Cursor, T store.Word](t *testing.T) {
	var o O
	rng := testutil.NewRNG(99)

	for range 200 {
		cells := testutil.RandomCells[T](rng, 6)
		s, err := New[O](cells)
		require.NoError(t, err)
		total := s.Len()

		n := uint(rng.Intn(int(total/2) + 1))
		from := uint(rng.Intn(int(total-n) + 1))
		to := uint(rng.Intn(int(total-n) + 1))
		src, err := s.Slice(from, from+n)
		require.NoError(t, err)
		dst, err := s.Slice(to, to+n)
		require.NoError(t, err)

		want := testutil.Decode(o, cells, 0, total)
		copy(want[to:to+n], want[from:from+n])

		require.NoError(t, dst.CopyFrom(src))
		require.Equal(t, want, testutil.Decode(o, cells, 0, total), "copy %d bits from %d to %d", n, from, to)
	}
}

func TestCopyFrom(t *testing.T) {
	t.Run("Msb0/u8", testCopyFrom[order.Msb0, uint8])
	t.Run("Lsb0/u16", testCopyFrom[order.Lsb0, uint16])
	t.Run("Msb0/u32", testCopyFrom[order.Msb0, uint32])
	t.Run("Lsb0/u64", testCopyFrom[order.Lsb0, uint64])
	t.Run("rev4/u32", testCopyFrom[rev4, uint32])

	t.Run("Disjoint", func(t *testing.T) {
		src, err := New[order.Lsb0]([]uint32{0xdeadbeef})
		require.NoError(t, err)
		cells := make([]uint8, 5)
		dst, err := New[order.Lsb0](cells)
		require.NoError(t, err)

		sub, err := dst.Slice(4, 36)
		require.NoError(t, err)
		for i, b := range src.Bits() {
			require.NoError(t, sub.Set(i, b))
		}
		assert.Equal(t, []uint8{0xf0, 0xee, 0xdb, 0xea, 0x0d}, cells)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		s, err := New[order.Msb0](make([]uint8, 2))
		require.NoError(t, err)
		a, _ := s.Slice(0, 3)
		b, _ := s.Slice(3, 7)

		err = a.CopyFrom(b)
		var mismatch *ErrLengthMismatch
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, uint(3), mismatch.Expected)
		assert.Equal(t, uint(4), mismatch.Actual)
	})
}

package bitmap

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// MaxRoaringBits is the longest region a 32-bit roaring bitmap can index.
const MaxRoaringBits = math.MaxUint32 + 1

// ErrTooLong indicates a region with more bits than a roaring bitmap can
// index.
type ErrTooLong struct {
	Bits uint64
}

func (e *ErrTooLong) Error() string {
	return fmt.Sprintf("region of %d bits exceeds roaring bitmap range of %d", e.Bits, uint64(MaxRoaringBits))
}

// ToBitmap returns the indices of the set bits of s.
func ToBitmap[O order.Cursor, T store.Word](s bitvec.Slice[O, T]) (*roaring.Bitmap, error) {
	if uint64(s.Len()) > MaxRoaringBits {
		return nil, &ErrTooLong{Bits: uint64(s.Len())}
	}

	bm := roaring.New()
	buf := make([]uint32, 0, 256)
	for i := range s.Ones() {
		buf = append(buf, uint32(i))
		if len(buf) == cap(buf) {
			bm.AddMany(buf)
			buf = buf[:0]
		}
	}
	bm.AddMany(buf)
	bm.RunOptimize()
	return bm, nil
}

// FromBitmap overwrites s so that exactly the bits named by bm are set.
// s is left untouched if bm names an index at or beyond s.Len().
func FromBitmap[O order.Cursor, T store.Word](s bitvec.Slice[O, T], bm *roaring.Bitmap) error {
	if !bm.IsEmpty() {
		if last := uint(bm.Maximum()); last >= s.Len() {
			return &bitvec.ErrIndexOutOfBounds{Index: last, Len: s.Len()}
		}
	}

	s.Fill(false)
	it := bm.Iterator()
	for it.HasNext() {
		if err := s.Set(uint(it.Next()), true); err != nil {
			return err
		}
	}
	return nil
}

// ToBitSet copies s into a new BitSet of length s.Len().
func ToBitSet[O order.Cursor, T store.Word](s bitvec.Slice[O, T]) *bitset.BitSet {
	b := bitset.New(s.Len())
	for i := range s.Ones() {
		b.Set(i)
	}
	return b
}

// FromBitSet overwrites s with the bits of b. s is left untouched if b has
// a set bit at or beyond s.Len().
func FromBitSet[O order.Cursor, T store.Word](s bitvec.Slice[O, T], b *bitset.BitSet) error {
	if i, ok := b.NextSet(s.Len()); ok {
		return &bitvec.ErrIndexOutOfBounds{Index: i, Len: s.Len()}
	}

	s.Fill(false)
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if err := s.Set(i, true); err != nil {
			return err
		}
	}
	return nil
}

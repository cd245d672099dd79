package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidths(t *testing.T) {
	assert.Equal(t, uint8(8), Bits[uint8]())
	assert.Equal(t, uint8(16), Bits[uint16]())
	assert.Equal(t, uint8(32), Bits[uint32]())
	assert.Equal(t, uint8(64), Bits[uint64]())

	assert.Equal(t, uint8(3), IndexBits[uint8]())
	assert.Equal(t, uint8(4), IndexBits[uint16]())
	assert.Equal(t, uint8(5), IndexBits[uint32]())
	assert.Equal(t, uint8(6), IndexBits[uint64]())

	assert.Equal(t, uintptr(2), Size[uint16]())
	assert.Equal(t, "u32", Name[uint32]())
}

func TestLowAndOnes(t *testing.T) {
	assert.Equal(t, uint8(0xff), Ones[uint8]())
	assert.Equal(t, uint8(0), Low[uint8](0))
	assert.Equal(t, uint8(0b0000_0111), Low[uint8](3))
	assert.Equal(t, uint8(0xff), Low[uint8](8))
	assert.Equal(t, ^uint64(0), Low[uint64](64))
	assert.Equal(t, 3, OnesCount(uint16(0b1011_0000_0000_0000)))
	assert.Equal(t, 64, OnesCount(^uint64(0)))
}

func TestOffset(t *testing.T) {
	cells, next := Offset[uint8](6, 4)
	assert.Equal(t, uint(1), cells)
	assert.Equal(t, uint8(2), next)

	cells, next = Offset[uint32](0, 32)
	assert.Equal(t, uint(1), cells)
	assert.Equal(t, uint8(0), next)

	cells, next = Offset[uint64](63, 0)
	assert.Equal(t, uint(0), cells)
	assert.Equal(t, uint8(63), next)
}

func TestSpan(t *testing.T) {
	tests := []struct {
		head  uint8
		n     uint
		cells uint
		tail  uint8
	}{
		{0, 0, 0, 0},
		{3, 0, 0, 3},
		{0, 8, 1, 8},
		{4, 4, 1, 8},
		{6, 4, 2, 2},
		{1, 6, 1, 7},
		{0, 16, 2, 8},
		{7, 10, 3, 1},
	}
	for _, tt := range tests {
		cells, tail := Span[uint8](tt.head, tt.n)
		assert.Equal(t, tt.cells, cells, "head=%d n=%d", tt.head, tt.n)
		assert.Equal(t, tt.tail, tail, "head=%d n=%d", tt.head, tt.n)
	}

	// A full-cell run ending on the boundary never reports a phantom cell.
	cells, tail := Span[uint64](0, 128)
	assert.Equal(t, uint(2), cells)
	assert.Equal(t, uint8(64), tail)
}

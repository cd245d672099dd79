package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitvec/order"
	"github.com/hupe1980/bitvec/store"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bools returns n pseudo-random bits.
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Bools(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// Range returns a random sub-range [start, end) of [0, n].
func (r *RNG) Range(n uint) (start, end uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := uint(r.rand.Int63n(int64(n) + 1))
	b := uint(r.rand.Int63n(int64(n) + 1))
	return min(a, b), max(a, b)
}

// RandomCells returns n cells filled with random bits.
func RandomCells[T store.Word](r *RNG, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(r.Uint64())
	}
	return out
}

// Decode reads n bits starting at bit head of cells[0], one bit at a time,
// through cursor c. It is the reference the word-level paths are tested
// against.
func Decode[T store.Word](c order.Cursor, cells []T, head uint8, n uint) []bool {
	w := uint(store.Bits[T]())
	out := make([]bool, n)
	for i := range out {
		pos := uint(head) + uint(i)
		cell := cells[pos/w]
		out[i] = cell>>c.At(uint8(pos%w), uint8(w))&1 == 1
	}
	return out
}

// Encode writes bits starting at bit head of cells[0] through cursor c and
// leaves every other bit unchanged.
func Encode[T store.Word](c order.Cursor, cells []T, head uint8, bits []bool) {
	w := uint(store.Bits[T]())
	for i, b := range bits {
		pos := uint(head) + uint(i)
		mask := T(1) << c.At(uint8(pos%w), uint8(w))
		if b {
			cells[pos/w] |= mask
		} else {
			cells[pos/w] &^= mask
		}
	}
}

// Uint assembles bits into an integer, first bit most significant when msb
// is set and least significant otherwise.
func Uint(bits []bool, msb bool) uint64 {
	var v uint64
	for i, b := range bits {
		if !b {
			continue
		}
		if msb {
			v |= 1 << (len(bits) - 1 - i)
		} else {
			v |= 1 << i
		}
	}
	return v
}

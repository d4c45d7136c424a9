package bitvec

import "math/bits"

// Vector is a fixed-capacity bitset backed by 64-bit words.
//
// Capacity is decided at allocation time and never grows; bit indices
// are caller-checked by construction (the engine only derives them from
// validated grid coordinates and square indexes). A Vector may alias a
// region of a larger word slab, which is how the lookup table stores
// per-square bitmaps side by side without per-square allocations.
type Vector []uint64

// Words returns the number of 64-bit words needed for n bits.
func Words(n int) int {
	return (n + 63) >> 6
}

// New allocates a zeroed Vector with capacity for n bits.
func New(n int) Vector {
	return make(Vector, Words(n))
}

// Set sets bit i.
func (v Vector) Set(i int) {
	v[i>>6] |= 1 << (i & 63)
}

// Test reports whether bit i is set.
func (v Vector) Test(i int) bool {
	return v[i>>6]&(1<<(i&63)) != 0
}

// Reset clears every bit, keeping the capacity.
func (v Vector) Reset() {
	for i := range v {
		v[i] = 0
	}
}

// Count returns the number of set bits.
func (v Vector) Count() int {
	n := 0
	for _, w := range v {
		n += bits.OnesCount64(w)
	}
	return n
}

// Covers reports whether every bit set in sub is also set in v.
// sub must not be longer than v.
func (v Vector) Covers(sub Vector) bool {
	for i, w := range sub {
		if v[i]&w != w {
			return false
		}
	}
	return true
}

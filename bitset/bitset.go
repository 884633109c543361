package bitset

import "math/bits"

// BitSet is a fixed-size set of bits packed into 64-bit words.
// Indexes past the size given to NewBitSet panic like any out of range slice access.
type BitSet []uint64

// NewBitSet returns a cleared BitSet able to hold n bits.
func NewBitSet(n uint64) BitSet {
	return make(BitSet, (n+63)/64)
}

func position(index uint64) (word uint64, mask uint64) {
	return index / 64, uint64(1) << (index % 64)
}

// IsSet reports whether the bit at index is set.
func (b BitSet) IsSet(index uint64) bool {
	w, mask := position(index)
	return b[w]&mask != 0
}

// Set sets the bit at index.
func (b BitSet) Set(index uint64) {
	w, mask := position(index)
	b[w] |= mask
}

// Count returns the number of set bits.
func (b BitSet) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

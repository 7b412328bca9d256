package bitstring

import (
	"errors"
	"fmt"
	"math/bits"
)

// Width is the number of addressable bits in a BitString.
const Width = 64

// Sentinel panics for contract violations.
var (
	// ErrIndexOutOfRange is the panic value for a bit index outside [0, Width).
	ErrIndexOutOfRange = errors.New("bitstring: index out of range")

	// ErrEmptyBitString is the panic value for LowestSet on a zero BitString.
	ErrEmptyBitString = errors.New("bitstring: lowest set bit of empty bit string")
)

// BitString is a subset of at most Width items encoded as one uint64.
type BitString uint64

// New wraps a raw word.
func New(data uint64) BitString { return BitString(data) }

// IsSet reports whether bit i is set.
// Panics with ErrIndexOutOfRange if i ∉ [0, Width).
func (b BitString) IsSet(i int) bool {
	mustIndex(i)
	return b&(1<<uint(i)) != 0
}

// Flip toggles bit i in place.
// Panics with ErrIndexOutOfRange if i ∉ [0, Width).
func (b *BitString) Flip(i int) {
	mustIndex(i)
	*b ^= 1 << uint(i)
}

// LowestSet returns the index of the least-significant set bit.
// Panics with ErrEmptyBitString when b == 0.
//
// Complexity: O(1) (single TZCNT/BSF on amd64).
func (b BitString) LowestSet() int {
	if b == 0 {
		panic(ErrEmptyBitString)
	}
	return bits.TrailingZeros64(uint64(b))
}

// IsEmpty reports whether no bit is set.
func (b BitString) IsEmpty() bool { return b == 0 }

// Len returns the number of set bits.
func (b BitString) Len() int { return bits.OnesCount64(uint64(b)) }

// Uint64 returns the raw word.
func (b BitString) Uint64() uint64 { return uint64(b) }

// Indices returns the set bit indices in ascending order.
//
// Complexity: O(popcount).
func (b BitString) Indices() []int {
	out := make([]int, 0, b.Len())
	for w := uint64(b); w != 0; w &= w - 1 {
		out = append(out, bits.TrailingZeros64(w))
	}
	return out
}

// String renders b in binary, zero-padded to at least 8 digits.
func (b BitString) String() string {
	return fmt.Sprintf("%08b", uint64(b))
}

func mustIndex(i int) {
	if i < 0 || i >= Width {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
}

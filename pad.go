package lattice

import (
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// fillerBlock is the protocol-fixed padding value:
// the empty byte sequence.
var fillerBlock = []byte{}

// PadBlocks extends blocks to the next power-of-two length
// by appending copies of the filler block (the empty byte sequence),
// preserving the order of the original blocks.
// If the length is already a power of two, the input slice
// is returned as-is.
//
// The returned bit set marks which indices of the returned slice
// hold filler. The tree itself never distinguishes filler from data;
// this is the caller-side knowledge that does.
//
// An empty input is returned unchanged with an empty filler set.
// Whether an empty sequence is acceptable is decided by [Root],
// which rejects it; PadBlocks never invents a filler-only tree.
func PadBlocks(blocks [][]byte) ([][]byte, *bitset.BitSet) {
	n := len(blocks)
	if n == 0 {
		return blocks, bitset.MustNew(0)
	}

	padded := n
	if n&(n-1) != 0 {
		padded = 1 << bits.Len(uint(n))
	}

	filler := bitset.MustNew(uint(padded))
	if padded == n {
		return blocks, filler
	}

	out := make([][]byte, padded)
	copy(out, blocks)
	for i := n; i < padded; i++ {
		out[i] = fillerBlock
		filler.Set(uint(i))
	}

	return out, filler
}

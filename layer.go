package lattice

import (
	"fmt"

	"github.com/gordian-engine/lattice/lthash"
)

// Layer is one horizontal level of the Merkle tree:
// an ordered sequence of equal-width digests.
//
// The leaf layer always has a power-of-two width,
// and each call to [Layer.Reduce] halves the width,
// so a non-leaf layer is always exactly half as wide
// as the layer it was reduced from.
type Layer struct {
	// Views into one contiguous backing slice,
	// allocated once per layer.
	digests [][]byte

	hashSize int
}

// NewLeafLayer hashes each block independently into a leaf digest,
// preserving the left-to-right block order.
//
// The blocks are expected to already be padded to a power-of-two count;
// see [PadBlocks]. hashSize is the digest width of h, in bytes.
func NewLeafLayer(blocks [][]byte, h lthash.Hasher, hashSize int) Layer {
	if len(blocks) == 0 {
		panic(fmt.Errorf(
			"BUG: leaf layer must have at least one block",
		))
	}
	if hashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: hashSize must be positive (got %d)", hashSize,
		))
	}

	// One allocation backs every digest in the layer.
	mem := make([]byte, len(blocks)*hashSize)

	digests := make([][]byte, len(blocks))
	for i, block := range blocks {
		digests[i] = mem[i*hashSize : (i+1)*hashSize]
		h.Leaf(block, digests[i][:0])
	}

	return Layer{
		digests: digests,

		hashSize: hashSize,
	}
}

// Len returns the number of digests in the layer.
func (l Layer) Len() int {
	return len(l.digests)
}

// Digest returns the digest at the given index within the layer.
// The caller must not retain or modify the returned slice.
func (l Layer) Digest(idx int) []byte {
	if idx < 0 || idx >= len(l.digests) {
		panic(fmt.Errorf(
			"BUG: attempted to get digest at index %d; must be in range [0, %d)",
			idx, len(l.digests),
		))
	}

	return l.digests[idx]
}

// Reduce produces the next layer up,
// hashing consecutive left-right digest pairs in original order:
// the digest at index 2i pairs with the digest at index 2i+1,
// and their node hash lands at index i of the new layer.
// Pairing is by explicit index, so the left-to-right order invariant
// holds by construction.
//
// Reduce panics if the layer width is not an even power of two;
// a malformed width reaching this point means the base layer
// was not padded correctly.
func (l Layer) Reduce(h lthash.Hasher) Layer {
	n := len(l.digests)
	if n < 2 || n&(n-1) != 0 {
		panic(fmt.Errorf(
			"BUG: cannot reduce malformed layer of width %d (must be a power of 2, at least 2)",
			n,
		))
	}

	half := n / 2
	mem := make([]byte, half*l.hashSize)

	out := make([][]byte, half)
	for i := range half {
		out[i] = mem[i*l.hashSize : (i+1)*l.hashSize]
		h.Node(l.digests[2*i], l.digests[2*i+1], out[i][:0])
	}

	return Layer{
		digests: out,

		hashSize: l.hashSize,
	}
}

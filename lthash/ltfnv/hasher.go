// Package ltfnv provides a [lthash.Hasher] backed by 64-bit FNV-1a.
//
// FNV-1a is not a cryptographic hash: it is collision-prone and offers no
// preimage resistance, so a tree built with it carries no integrity
// guarantee against an adversary. It exists for demos and for tests, where
// its tiny digests keep expected values easy to construct by hand.
package ltfnv

import (
	"hash/fnv"
)

const HashSize = 8

// Hasher hashes leaves and nodes with 64-bit FNV-1a.
//
// Unlike the cryptographic hashers in the sibling packages,
// it applies no domain separation:
// the node digest is exactly the hash of the two digests concatenated.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) {
	h := fnv.New64a()
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) {
	h := fnv.New64a()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

// Package lthash defines the hashing contract used to build Merkle trees.
//
// The tree logic in the root package is agnostic to the hash algorithm and
// to the digest width; both are supplied through the [Hasher] interface and
// the per-implementation hash size. The subpackages provide ready
// implementations: ltsha256, ltblake2b, ltblake3, and the non-cryptographic
// ltfnv.
package lthash

// Hasher is the user-defined interface for hashing blocks and digest pairs.
// The tree passes raw block data to the Leaf method to create a leaf digest,
// and it passes two adjacent digests to the Node method
// to create the digest one layer up.
//
// Node hashes the left digest followed by the right digest, in that order.
// Implementations must not be symmetric in left and right:
// swapping two children has to produce a different parent digest.
//
// To be allocation-efficient, the Hasher implementation
// must append its hash output to dst, instead of creating a new byte slice.
// Hasher must not retain references to the dst slice.
//
// Furthermore, Hasher methods must be safe to call concurrently,
// and must be deterministic: equal inputs always produce equal output
// within a single process and configuration.
type Hasher interface {
	Leaf(in []byte, dst []byte)
	Node(left, right []byte, dst []byte)
}

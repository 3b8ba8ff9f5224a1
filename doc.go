// Package lattice computes the root digest of a balanced binary Merkle tree
// built from an ordered sequence of leaf blocks.
//
// The base layer is padded to the next power of two with a fixed filler
// block, each block is hashed into a leaf digest, and adjacent digest pairs
// are repeatedly concatenated and hashed, left to right, until a single root
// digest remains. The root commits to every block and to the order of the
// blocks.
//
// The hash function is supplied by the caller as a [lthash.Hasher], so the
// tree logic is independent of the digest algorithm and width. The lthash
// subpackages provide SHA-256, BLAKE2b, and BLAKE3 implementations, plus a
// non-cryptographic 64-bit implementation for demos and tests.
package lattice

package ltsha256

import (
	"crypto/sha256"
)

const HashSize = sha256.Size

// Domain separation prefixes, so a leaf digest can never be
// confused with an interior digest over the same bytes.
const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// Hasher is a [lthash.Hasher] backed by SHA-256 hashes.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) {
	h := sha256.New()
	_, _ = h.Write([]byte{leafPrefix})
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) {
	h := sha256.New()
	_, _ = h.Write([]byte{nodePrefix})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

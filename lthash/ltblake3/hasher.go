// Package ltblake3 provides a [lthash.Hasher] backed by BLAKE3.
package ltblake3

import (
	"github.com/zeebo/blake3"
)

// HashSize is the default BLAKE3 digest width in bytes.
const HashSize = 32

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// Hasher hashes leaves and nodes with BLAKE3.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) {
	h := blake3.New()
	_, _ = h.Write([]byte{leafPrefix})
	_, _ = h.Write(in)
	_ = h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) {
	h := blake3.New()
	_, _ = h.Write([]byte{nodePrefix})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	_ = h.Sum(dst)
}

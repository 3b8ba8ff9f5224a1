// Package ltblake2b provides a [lthash.Hasher] backed by BLAKE2b-256.
package ltblake2b

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const HashSize = blake2b.Size256

const (
	leafPrefix = 0x00
	nodePrefix = 0x01
)

// Hasher hashes leaves and nodes with BLAKE2b-256.
type Hasher struct{}

func (Hasher) Leaf(in []byte, dst []byte) {
	h, err := blake2b.New256(nil)
	if err != nil {
		// New256 only fails on an oversized key, and we pass none.
		panic(fmt.Errorf("BUG: failed to create BLAKE2b hasher: %w", err))
	}
	_, _ = h.Write([]byte{leafPrefix})
	_, _ = h.Write(in)
	h.Sum(dst)
}

func (Hasher) Node(left, right []byte, dst []byte) {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Errorf("BUG: failed to create BLAKE2b hasher: %w", err))
	}
	_, _ = h.Write([]byte{nodePrefix})
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	h.Sum(dst)
}

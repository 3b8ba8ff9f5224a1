// Package ltcbor builds Merkle leaf blocks from arbitrary Go values.
//
// Values are encoded with canonical CBOR, so equal values always encode to
// equal blocks, which is the determinism the tree's leaf hashing requires.
// The resulting block sequences feed directly into [lattice.Root].
package ltcbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("BUG: failed to create canonical CBOR encode mode: %w", err))
	}
	return em
}()

// Block encodes one value into a single leaf block.
func Block(value any) ([]byte, error) {
	b, err := encMode.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value as block: %w", err)
	}
	return b, nil
}

// Blocks encodes each value, in order, into a block sequence.
func Blocks(values ...any) ([][]byte, error) {
	out := make([][]byte, len(values))
	for i, v := range values {
		b, err := encMode.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode value %d as block: %w", i, err)
		}
		out[i] = b
	}

	return out, nil
}

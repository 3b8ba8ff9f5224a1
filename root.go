package lattice

import (
	"fmt"
	"strings"

	"github.com/gordian-engine/lattice/lthash"
)

// RootConfig is the configuration for [Root] and [SentenceRoot].
type RootConfig struct {
	// Hasher produces leaf and node digests.
	Hasher lthash.Hasher

	// HashSize is the digest width of Hasher, in bytes.
	HashSize int
}

func (c RootConfig) validate() {
	if c.Hasher == nil {
		panic(fmt.Errorf("BUG: RootConfig.Hasher must not be nil"))
	}
	if c.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: RootConfig.HashSize must be positive (got %d)", c.HashSize,
		))
	}
}

// Root calculates the Merkle root committing to the given ordered blocks.
//
// The blocks are padded to a power-of-two count with the filler block,
// hashed into the leaf layer, and then reduced pairwise, left to right,
// until a single digest remains. A single-block input needs no reduction:
// its root is that block's leaf digest.
//
// The root is always cfg.HashSize bytes.
// It returns an [EmptyInputError] if blocks is empty.
func Root(blocks [][]byte, cfg RootConfig) ([]byte, error) {
	cfg.validate()

	if len(blocks) == 0 {
		return nil, EmptyInputError{}
	}

	padded, _ := PadBlocks(blocks)

	layer := NewLeafLayer(padded, cfg.Hasher, cfg.HashSize)
	for layer.Len() > 1 {
		layer = layer.Reduce(cfg.Hasher)
	}

	return layer.Digest(0), nil
}

// WordBlocks tokenizes a sentence into whitespace-delimited word blocks,
// preserving word order. It is one tokenization policy among many;
// [Root] accepts any pre-tokenized block sequence.
func WordBlocks(sentence string) [][]byte {
	words := strings.Fields(sentence)

	blocks := make([][]byte, len(words))
	for i, w := range words {
		blocks[i] = []byte(w)
	}

	return blocks
}

// SentenceRoot calculates the Merkle root of a sentence,
// tokenized into word blocks with [WordBlocks].
func SentenceRoot(sentence string, cfg RootConfig) ([]byte, error) {
	return Root(WordBlocks(sentence), cfg)
}

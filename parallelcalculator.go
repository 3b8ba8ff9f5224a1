package lattice

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/gordian-engine/lattice/lthash"
)

// ParallelCalculator computes the same roots as [Root],
// fanning the hash work within each layer across a bounded set
// of goroutines.
//
// Every pair hash within one reduction round is independent
// of the others, as is every leaf hash within the base layer,
// so they may be computed in any order and in parallel.
// The rounds themselves remain sequential:
// each layer depends on the full layer below it.
//
// Roots are bit-identical to the ones produced by [Root].
type ParallelCalculator struct {
	log *slog.Logger

	h        lthash.Hasher
	hashSize int

	workers int
}

// ParallelCalculatorConfig is the configuration passed to [NewParallelCalculator].
type ParallelCalculatorConfig struct {
	// Hasher produces leaf and node digests.
	// Its methods are called concurrently.
	Hasher lthash.Hasher

	// HashSize is the digest width of Hasher, in bytes.
	HashSize int

	// Workers is the number of goroutines hashing within one layer.
	// If zero, it defaults to GOMAXPROCS.
	Workers int
}

// NewParallelCalculator returns a ParallelCalculator
// using the hasher and worker count in cfg.
func NewParallelCalculator(log *slog.Logger, cfg ParallelCalculatorConfig) *ParallelCalculator {
	if cfg.Hasher == nil {
		panic(fmt.Errorf("BUG: ParallelCalculatorConfig.Hasher must not be nil"))
	}
	if cfg.HashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: ParallelCalculatorConfig.HashSize must be positive (got %d)",
			cfg.HashSize,
		))
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &ParallelCalculator{
		log: log,

		h:        cfg.Hasher,
		hashSize: cfg.HashSize,

		workers: workers,
	}
}

// Root calculates the Merkle root committing to the given ordered blocks.
//
// The context is only observed between reduction rounds;
// a canceled context stops the calculation
// before the next round begins.
// It returns an [EmptyInputError] if blocks is empty.
func (c *ParallelCalculator) Root(ctx context.Context, blocks [][]byte) ([]byte, error) {
	if len(blocks) == 0 {
		return nil, EmptyInputError{}
	}

	padded, _ := PadBlocks(blocks)

	layer := c.leafLayer(padded)
	c.log.Debug(
		"Hashed leaf layer",
		"width", layer.Len(),
	)

	for layer.Len() > 1 {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf(
				"context canceled before reducing layer of width %d: %w",
				layer.Len(), err,
			)
		}

		layer = c.reduce(layer)
		c.log.Debug(
			"Reduced layer",
			"width", layer.Len(),
		)
	}

	return layer.Digest(0), nil
}

// leafLayer is the parallel counterpart of [NewLeafLayer].
func (c *ParallelCalculator) leafLayer(blocks [][]byte) Layer {
	n := len(blocks)

	mem := make([]byte, n*c.hashSize)
	digests := make([][]byte, n)
	for i := range digests {
		digests[i] = mem[i*c.hashSize : (i+1)*c.hashSize]
	}

	c.fanOut(n, func(i int) {
		c.h.Leaf(blocks[i], digests[i][:0])
	})

	return Layer{
		digests: digests,

		hashSize: c.hashSize,
	}
}

// reduce is the parallel counterpart of [Layer.Reduce],
// with the same left-to-right indexed pairing
// and the same malformed-width invariant.
func (c *ParallelCalculator) reduce(l Layer) Layer {
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
	}

	c.fanOut(half, func(i int) {
		c.h.Node(l.digests[2*i], l.digests[2*i+1], out[i][:0])
	})

	return Layer{
		digests: out,

		hashSize: l.hashSize,
	}
}

// fanOut runs fn for every index in [0, n),
// striped across the calculator's workers.
// Each index is handled by exactly one goroutine,
// and every worker writes only its own disjoint digests,
// so no synchronization beyond the final wait is needed.
func (c *ParallelCalculator) fanOut(n int, fn func(i int)) {
	workers := min(c.workers, n)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		go func() {
			defer wg.Done()

			for i := w; i < n; i += workers {
				fn(i)
			}
		}()
	}

	wg.Wait()
}

package lattice_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/gordian-engine/lattice"
	"github.com/gordian-engine/lattice/internal/ltest"
	"github.com/gordian-engine/lattice/lthash/ltsha256"
)

func TestParallelCalculator_matchesSerialRoot(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serialCfg := lattice.RootConfig{
		Hasher:   ltsha256.Hasher{},
		HashSize: ltsha256.HashSize,
	}

	c := lattice.NewParallelCalculator(slogt.New(t), lattice.ParallelCalculatorConfig{
		Hasher:   ltsha256.Hasher{},
		HashSize: ltsha256.HashSize,
		Workers:  4,
	})

	for _, n := range []int{1, 2, 3, 9, 16, 33, 100} {
		t.Run(fmt.Sprintf("%d blocks", n), func(t *testing.T) {
			blocks := ltest.RandomBlocksForTest(t, n, 48)

			want, err := lattice.Root(blocks, serialCfg)
			require.NoError(t, err)

			got, err := c.Root(ctx, blocks)
			require.NoError(t, err)

			require.Equal(t, want, got)
		})
	}
}

func TestParallelCalculator_defaultWorkerCount(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Leaving Workers at zero falls back to GOMAXPROCS;
	// the root must be unaffected by however many workers that is.
	c := lattice.NewParallelCalculator(slogt.New(t), lattice.ParallelCalculatorConfig{
		Hasher:   ltsha256.Hasher{},
		HashSize: ltsha256.HashSize,
	})

	blocks := ltest.RandomBlocksForTest(t, 17, 48)

	want, err := lattice.Root(blocks, lattice.RootConfig{
		Hasher:   ltsha256.Hasher{},
		HashSize: ltsha256.HashSize,
	})
	require.NoError(t, err)

	got, err := c.Root(ctx, blocks)
	require.NoError(t, err)

	require.Equal(t, want, got)
}

func TestParallelCalculator_emptyInput(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := lattice.NewParallelCalculator(slogt.New(t), lattice.ParallelCalculatorConfig{
		Hasher:   ltsha256.Hasher{},
		HashSize: ltsha256.HashSize,
	})

	_, err := c.Root(ctx, nil)

	var empty lattice.EmptyInputError
	require.ErrorAs(t, err, &empty)
}

func TestParallelCalculator_canceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := lattice.NewParallelCalculator(slogt.New(t), lattice.ParallelCalculatorConfig{
		Hasher:   ltsha256.Hasher{},
		HashSize: ltsha256.HashSize,
	})

	// Enough blocks that at least one reduction round is required,
	// since cancellation is only observed between rounds.
	blocks := ltest.RandomBlocksForTest(t, 8, 48)

	_, err := c.Root(ctx, blocks)
	require.ErrorIs(t, err, context.Canceled)
}

package lthashtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gordian-engine/lattice/lthash"
)

type HasherFactory func() (h lthash.Hasher, hashSize int)

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("leaf respects input", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("data_1"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("data_2"), dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("leaf output has the declared width", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		exact := make([]byte, sz)
		h.Leaf([]byte("width_check"), exact[:0])

		// Appending into a roomier buffer must write exactly sz bytes
		// and leave the rest of the backing memory untouched.
		roomy := make([]byte, sz+16)
		h.Leaf([]byte("width_check"), roomy[:0])

		require.Equal(t, exact, roomy[:sz])
		require.Equal(t, make([]byte, 16), roomy[sz:])
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		left := make([]byte, sz)
		h.Leaf([]byte("left_child"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right_child"), right[:0])

		dst01 := make([]byte, sz)
		h.Node(left, right, dst01[:0])

		dst02 := make([]byte, sz)
		h.Node(left, right, dst02[:0])

		require.Equal(t, dst01, dst02)
	})

	t.Run("node respects child order", func(t *testing.T) {
		t.Parallel()

		h, sz := f()

		left := make([]byte, sz)
		h.Leaf([]byte("left_child"), left[:0])
		right := make([]byte, sz)
		h.Leaf([]byte("right_child"), right[:0])

		dst01 := make([]byte, sz)
		h.Node(left, right, dst01[:0])

		dst02 := make([]byte, sz)
		h.Node(right, left, dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})
}

package ltblake2b_test

import (
	"testing"

	"github.com/gordian-engine/lattice/lthash"
	"github.com/gordian-engine/lattice/lthash/ltblake2b"
	"github.com/gordian-engine/lattice/lthash/lthashtest"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	lthashtest.TestHasherCompliance(t, func() (lthash.Hasher, int) {
		return ltblake2b.Hasher{}, ltblake2b.HashSize
	})
}

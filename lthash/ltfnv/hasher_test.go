package ltfnv_test

import (
	"testing"

	"github.com/gordian-engine/lattice/lthash"
	"github.com/gordian-engine/lattice/lthash/ltfnv"
	"github.com/gordian-engine/lattice/lthash/lthashtest"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	lthashtest.TestHasherCompliance(t, func() (lthash.Hasher, int) {
		return ltfnv.Hasher{}, ltfnv.HashSize
	})
}

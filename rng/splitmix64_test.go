package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMix64KnownOutputs(t *testing.T) {
	r := NewSplitMix64(0)

	want := []uint64{
		16294208416658607535,
		7960286522194355700,
		487617019471545679,
		17909611376780542444,
	}
	for i, w := range want {
		assert.Equal(t, w, r.Uint64(), "draw %d", i+1)
	}
	gamma := uint64(goldenGamma)
	assert.Equal(t, 4*gamma, r.State())
}

func TestSplitMix64Seed123(t *testing.T) {
	r := NewSplitMix64(123)

	assert.Equal(t, uint64(13032462758197477675), r.Uint64())
	assert.Equal(t, uint64(18015028434894305148), r.Uint64())
	assert.Equal(t, uint64(15857969311440292840), r.Uint64())
}

func TestSplitMix64Determinism(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, 123, 1 << 63, Max} {
		a := NewSplitMix64(seed)
		b := NewSplitMix64(seed)
		for i := range 1000 {
			require.Equal(t, a.Uint64(), b.Uint64(), "seed %d draw %d", seed, i)
		}
	}
}

func TestSplitMix64CopyIsIndependent(t *testing.T) {
	a := NewSplitMix64(7)
	a.Uint64()

	b := *a
	first := a.Uint64()
	a.Uint64()
	a.Uint64()

	assert.Equal(t, first, b.Uint64(), "copy should continue from the state at copy time")
}

func TestSplitMix64StateWrapsAround(t *testing.T) {
	r := NewSplitMix64(Max)
	r.Uint64()

	assert.Equal(t, uint64(goldenGamma-1), r.State())
}

func TestSplitMix64Bounds(t *testing.T) {
	r := NewSplitMix64(0)

	assert.Equal(t, uint64(0), r.Min())
	assert.Equal(t, uint64(18446744073709551615), r.Max())
}

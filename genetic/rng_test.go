package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRngFromSeed_ZeroPolicy(t *testing.T) {
	a := rngFromSeed(0)
	b := rngFromSeed(defaultRNGSeed)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63(), "seed 0 must alias the default stream")
	}
}

func TestRngFromSeed_Deterministic(t *testing.T) {
	a := rngFromSeed(42)
	b := rngFromSeed(42)
	for i := 0; i < 16; i++ {
		require.Equal(t, a.Int63(), b.Int63())
	}
}

func TestDeriveSeed_Avalanche(t *testing.T) {
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(1, 1))
	assert.NotEqual(t, deriveSeed(1, 0), deriveSeed(2, 0))
}

func TestDeriveRNG_IndependentStreams(t *testing.T) {
	base := rngFromSeed(7)
	r1 := deriveRNG(base, 0)
	r2 := deriveRNG(base, 0) // same stream id, advanced base

	assert.NotEqual(t, r1.Int63(), r2.Int63())
	assert.NotNil(t, deriveRNG(nil, 3))
}

func TestShuffleRunes_PreservesMultiset(t *testing.T) {
	orig := []rune("abcdefgh")
	g := append([]rune(nil), orig...)
	shuffleRunesInPlace(g, rngFromSeed(9))

	assert.ElementsMatch(t, orig, g)
	assert.NotEqual(t, orig, g, "8 elements under seed 9 should move")
}

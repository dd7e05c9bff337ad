package graphmodel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphgen/ingestmodel"
)

// TestNewEdgeDistribution_S4SBMClosure reproduces spec.md §8 scenario S4:
// types {A:100,B:100}, E = {(A,A):10,(A,B):90,(B,A):0,(B,B):0}. Over
// 100000 draws, the empirical A->A share should be close to 10% and A->B
// close to 90%, with zero B->* draws (B has no outgoing mass at all).
func TestNewEdgeDistribution_S4SBMClosure(t *testing.T) {
	populations := map[ingestmodel.NodeType]ingestmodel.Count{"A": 100, "B": 100}
	sbm := map[TypePair]ingestmodel.Count{
		{From: "A", To: "A"}: 10,
		{From: "A", To: "B"}: 90,
	}

	dist, err := NewEdgeDistribution("r", populations, sbm, weightFaithful)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	var aa, ab int
	const trials = 100000
	for i := 0; i < trials; i++ {
		pair := dist.Transition(rng)
		require.Equal(t, ingestmodel.NodeType("A"), pair.From)
		switch pair.To {
		case ingestmodel.NodeType("A"):
			aa++
		case ingestmodel.NodeType("B"):
			ab++
		default:
			t.Fatalf("unexpected To type %q", pair.To)
		}
	}
	require.Equal(t, trials, aa+ab)

	aaFrac := float64(aa) / float64(trials)
	require.InDelta(t, 0.1, aaFrac, 0.01)
}

func TestNewEdgeDistribution_NoOutgoingTypes(t *testing.T) {
	_, err := NewEdgeDistribution("r", nil, nil, weightFaithful)
	require.ErrorIs(t, err, ErrNoOutgoingTypes)
}

// TestNewEdgeDistribution_PolicyAffectsOnlyScale verifies the faithful and
// corrected policies agree on relative proportions even though their
// absolute weights differ by a constant factor (SPEC_FULL.md §L).
func TestNewEdgeDistribution_PolicyAffectsOnlyScale(t *testing.T) {
	populations := map[ingestmodel.NodeType]ingestmodel.Count{"A": 100, "B": 100}
	sbm := map[TypePair]ingestmodel.Count{
		{From: "A", To: "A"}: 10,
		{From: "A", To: "B"}: 90,
	}

	faithful, err := NewEdgeDistribution("r", populations, sbm, weightFaithful)
	require.NoError(t, err)
	corrected, err := NewEdgeDistribution("r", populations, sbm, weightCorrected)
	require.NoError(t, err)

	rng1 := rand.New(rand.NewSource(1))
	rng2 := rand.New(rand.NewSource(1))
	const trials = 20000
	var f, c int
	for i := 0; i < trials; i++ {
		if faithful.Transition(rng1).To == ingestmodel.NodeType("A") {
			f++
		}
		if corrected.Transition(rng2).To == ingestmodel.NodeType("A") {
			c++
		}
	}
	require.InDelta(t, float64(f)/trials, float64(c)/trials, 0.02)
}

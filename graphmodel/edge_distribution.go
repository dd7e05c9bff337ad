// SPDX-License-Identifier: MIT
package graphmodel

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphgen/alias"
	"github.com/katalvlaran/graphgen/ingestmodel"
)

// TypePair names the (from, to) NodeType pair an edge of some color
// connects. It mirrors ingestmodel.TypePair so graphmodel callers never
// need to import ingestmodel's internal representation directly.
type TypePair struct {
	From ingestmodel.NodeType
	To   ingestmodel.NodeType
}

// EdgeDistribution is the alias sampler over a single edge color's
// type-pair mixing matrix (spec.md §4.C): drawing from it yields a
// (From, To) NodeType pair with probability proportional to
//
//	w(a,b) = (N[a] / N_sum^2) * (E[(a,b)] / sum_b' E[(a,b')])
//
// where N_sum ranges over types with at least one outgoing edge of this
// color. Immutable once built; Transition is safe for concurrent use from
// multiple goroutines given distinct *rand.Rand instances.
type EdgeDistribution struct {
	color ingestmodel.EdgeColor
	table *alias.Table[TypePair]
}

// weightPolicy selects the denominator EdgeDistribution divides the
// type-proportional factor N[a] by. The original implementation this spec
// was distilled from divides by N_sum twice — once while building a
// "filtered_nodes" intermediate, and again in the final probability
// expression — so the faithful policy's denominator is N_sum^2.
// See SPEC_FULL.md §L.
type weightPolicy int

const (
	// weightFaithful reproduces the original's N_sum^2 denominator.
	weightFaithful weightPolicy = iota
	// weightCorrected normalizes the type-proportional factor by a single
	// N_sum, as an ordinary degree-corrected SBM would.
	weightCorrected
)

// NewEdgeDistribution builds the alias sampler for one edge color.
// populations maps every NodeType with nonzero size to its (already
// scaled) population N[t]; sbm maps each observed (From, To) pair to its
// raw edge count for this color. Only types with at least one positive
// outgoing count contribute to N_sum (spec.md §4.C step 1).
func NewEdgeDistribution(
	color ingestmodel.EdgeColor,
	populations map[ingestmodel.NodeType]ingestmodel.Count,
	sbm map[TypePair]ingestmodel.Count,
	policy weightPolicy,
) (*EdgeDistribution, error) {
	rowSum := make(map[ingestmodel.NodeType]int64, len(populations))
	for pair, count := range sbm {
		if count > 0 {
			rowSum[pair.From] += int64(count)
		}
	}
	if len(rowSum) == 0 {
		return nil, graphmodelErrorf("NewEdgeDistribution", ErrNoOutgoingTypes)
	}

	var nSum int64
	for t := range rowSum {
		nSum += int64(populations[t])
	}
	if nSum <= 0 {
		return nil, graphmodelErrorf("NewEdgeDistribution", ErrNoOutgoingTypes)
	}

	var typeFactorDenom float64
	switch policy {
	case weightCorrected:
		typeFactorDenom = float64(nSum)
	default: // weightFaithful
		typeFactorDenom = float64(nSum) * float64(nSum)
	}

	// Visit pairs in a fixed order so the alias table's columns, and hence
	// the draws for a given RNG stream, do not depend on map iteration.
	keys := make([]TypePair, 0, len(sbm))
	for pair := range sbm {
		keys = append(keys, pair)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})

	pairs := make([]TypePair, 0, len(sbm))
	weights := make([]float64, 0, len(sbm))
	for _, pair := range keys {
		count := sbm[pair]
		if count <= 0 {
			continue
		}
		rs := rowSum[pair.From]
		if rs <= 0 {
			continue
		}
		typeFactor := float64(populations[pair.From]) / typeFactorDenom
		conditional := float64(count) / float64(rs)

		pairs = append(pairs, pair)
		weights = append(weights, typeFactor*conditional)
	}
	if len(pairs) == 0 {
		return nil, graphmodelErrorf("NewEdgeDistribution", ErrNoOutgoingTypes)
	}

	table, err := alias.New(weights, pairs)
	if err != nil {
		return nil, graphmodelErrorf("NewEdgeDistribution", err)
	}

	return &EdgeDistribution{color: color, table: table}, nil
}

// Color returns the edge color this distribution samples type pairs for.
func (d *EdgeDistribution) Color() ingestmodel.EdgeColor { return d.color }

// Transition draws one (From, To) NodeType pair from the mixing matrix.
func (d *EdgeDistribution) Transition(rng *rand.Rand) TypePair {
	return d.table.Draw(rng)
}

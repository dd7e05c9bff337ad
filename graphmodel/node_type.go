// SPDX-License-Identifier: MIT
package graphmodel

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphgen/alias"
	"github.com/katalvlaran/graphgen/ingestmodel"
)

// idRange is a half-open NodeID range [Lo, Hi) within [0, p), the element
// type of the alias tables NodeType builds over its degree buckets
// (spec.md §4.D step 4).
type idRange struct {
	Lo, Hi int64
}

// colorHash holds the per-color universal-hash coefficients (a, b) that
// permute [0,p) so degree-correct draws are not visually concentrated on a
// low ID prefix (spec.md §4.D step 5).
type colorHash struct {
	a, b int64
}

// NodeType is the per-type population plus, for every observed edge color,
// a pair of degree-bucket alias samplers (in and out) and a universal-hash
// permutation over [0,p). It is built once by NewNodeType and is immutable
// and safe for concurrent GetStartNode/GetTargetNode calls thereafter.
type NodeType struct {
	name   ingestmodel.NodeType
	offset int64
	size   int64
	p      int64

	inSamplers  map[ingestmodel.EdgeColor]*alias.Table[idRange]
	outSamplers map[ingestmodel.EdgeColor]*alias.Table[idRange]
	hashes      map[ingestmodel.EdgeColor]colorHash
}

// BucketSet is the (degree, count) list for one edge color's in- or
// out-degree histogram, already scaled to the target population by the
// caller (GraphModel) — NewNodeType itself performs no scaling, only
// prime-padding and bucket weighting.
type BucketSet = []ingestmodel.Bucket

// NewNodeType constructs a NodeType for one scaled node type. inBuckets and
// outBuckets map edge color to that color's degree-bucket list; a color
// present in one but absent from the other falls back to a single bucket
// of degree 1 covering the whole population (spec.md §4.D step 2 — a
// color this type never transmits/receives on is still queryable, just
// uniformly).
//
// rng seeds the per-color hash-coefficient draw deterministically; callers
// pass a stream derived via deriveSeed/streamRNG so construction itself is
// reproducible given a fixed global seed.
func NewNodeType(
	name ingestmodel.NodeType,
	offset, size int64,
	inBuckets, outBuckets map[ingestmodel.EdgeColor]BucketSet,
	rng *rand.Rand,
) (*NodeType, error) {
	if size <= 0 {
		return nil, graphmodelErrorf("NewNodeType", ErrEmptyNodeType)
	}

	p := nextPrime(size)

	colors := make(map[ingestmodel.EdgeColor]struct{}, len(inBuckets)+len(outBuckets))
	for c := range inBuckets {
		colors[c] = struct{}{}
	}
	for c := range outBuckets {
		colors[c] = struct{}{}
	}
	colorOrder := make([]ingestmodel.EdgeColor, 0, len(colors))
	for c := range colors {
		colorOrder = append(colorOrder, c)
	}
	sort.Slice(colorOrder, func(i, j int) bool { return colorOrder[i] < colorOrder[j] })

	nt := &NodeType{
		name:        name,
		offset:      offset,
		size:        size,
		p:           p,
		inSamplers:  make(map[ingestmodel.EdgeColor]*alias.Table[idRange], len(colors)),
		outSamplers: make(map[ingestmodel.EdgeColor]*alias.Table[idRange], len(colors)),
		hashes:      make(map[ingestmodel.EdgeColor]colorHash, len(colors)),
	}

	fallback := BucketSet{{Degree: 1, Count: size}}

	for _, color := range colorOrder {
		in := inBuckets[color]
		if len(in) == 0 {
			in = fallback
		}
		out := outBuckets[color]
		if len(out) == 0 {
			out = fallback
		}

		in = padToPrime(padZeroDegree(in, size), p-size)
		out = padToPrime(padZeroDegree(out, size), p-size)

		inSampler, err := buildBucketSampler(in)
		if err != nil {
			return nil, graphmodelErrorf(fmt.Sprintf("NewNodeType(%s,%s).in", name, color), err)
		}
		outSampler, err := buildBucketSampler(out)
		if err != nil {
			return nil, graphmodelErrorf(fmt.Sprintf("NewNodeType(%s,%s).out", name, color), err)
		}

		nt.inSamplers[color] = inSampler
		nt.outSamplers[color] = outSampler
		nt.hashes[color] = colorHash{
			a: 1 + rng.Int63n(p-1), // a in [1, p-1]
			b: rng.Int63n(p),       // b in [0, p-1]
		}
	}

	return nt, nil
}

// padZeroDegree appends a degree-0 bucket covering the shortfall when the
// bucket counts sum to less than size (flooring during scaling can leave a
// histogram short of the scaled population). The caller's slice is never
// mutated.
func padZeroDegree(buckets BucketSet, size int64) BucketSet {
	var total int64
	for _, b := range buckets {
		total += b.Count
	}
	if total >= size {
		return buckets
	}
	out := make(BucketSet, len(buckets), len(buckets)+1)
	copy(out, buckets)
	return append(out, ingestmodel.Bucket{Degree: 0, Count: size - total})
}

// padToPrime distributes `surplus` extra elements round-robin across
// buckets sorted by descending degree*count (spec.md §4.D step 3), so the
// bucket counts sum to p instead of size. The input slice is copied; the
// caller's slice is never mutated.
func padToPrime(buckets BucketSet, surplus int64) BucketSet {
	out := make(BucketSet, len(buckets))
	copy(out, buckets)
	sortBucketsDescWeight(out)

	if surplus <= 0 || len(out) == 0 {
		return out
	}
	for i := int64(0); i < surplus; i++ {
		out[i%int64(len(out))].Count++
	}
	return out
}

// sortBucketsDescWeight reorders buckets by descending degree*count,
// breaking ties by ascending degree — the same stable ordering
// ingestmodel.Histogram.Buckets produces, reimplemented here because
// GraphModel may hand NewNodeType freshly-scaled buckets that were never
// routed back through a Histogram.
func sortBucketsDescWeight(b BucketSet) {
	for i := 1; i < len(b); i++ {
		j := i
		for j > 0 && weightLess(b[j], b[j-1]) {
			b[j], b[j-1] = b[j-1], b[j]
			j--
		}
	}
}

func weightLess(a, b ingestmodel.Bucket) bool {
	wa := a.Degree * a.Count
	wb := b.Degree * b.Count
	if wa != wb {
		return wa > wb
	}
	return a.Degree < b.Degree
}

// buildBucketSampler assigns each bucket a contiguous half-open NodeID
// range within [0, p) in sorted order (spec.md §4.D step 4) and builds an
// alias.Table weighted by degree*count over those ranges.
func buildBucketSampler(buckets BucketSet) (*alias.Table[idRange], error) {
	var totalWeight int64
	for _, b := range buckets {
		totalWeight += b.Degree * b.Count
	}
	uniform := totalWeight <= 0
	if uniform {
		// Every bucket has degree 0 (or is empty): fall back to uniform
		// weighting by count alone so construction never fails outright.
		for _, b := range buckets {
			totalWeight += b.Count
		}
	}

	weights := make([]float64, len(buckets))
	ranges := make([]idRange, len(buckets))
	var lo int64
	for i, b := range buckets {
		hi := lo + b.Count
		ranges[i] = idRange{Lo: lo, Hi: hi}
		w := b.Degree * b.Count
		if uniform {
			w = b.Count
		}
		weights[i] = float64(w) / float64(totalWeight)
		lo = hi
	}

	return alias.New(weights, ranges)
}

// GetStartNode draws a concrete outgoing-endpoint NodeID of this type for
// the given color, resampling until the universal hash lands within
// [0, size) (spec.md §4.D "Sampling"). An attempt is accepted when the hash
// lands below size; for x uniform over [0,p) that happens with probability
// size/p, so a draw takes p/size attempts on average.
func (nt *NodeType) GetStartNode(color ingestmodel.EdgeColor, rng *rand.Rand) int64 {
	return nt.sample(nt.outSamplers[color], nt.hashes[color], rng)
}

// GetTargetNode draws a concrete incoming-endpoint NodeID of this type for
// the given color, symmetric to GetStartNode but over the in-distribution.
func (nt *NodeType) GetTargetNode(color ingestmodel.EdgeColor, rng *rand.Rand) int64 {
	return nt.sample(nt.inSamplers[color], nt.hashes[color], rng)
}

func (nt *NodeType) sample(sampler *alias.Table[idRange], h colorHash, rng *rand.Rand) int64 {
	if sampler == nil {
		// This color was never observed for this type in either direction
		// at construction time; EdgeDistribution should never route here,
		// but fall back to a uniform draw over the type's range rather
		// than dereference a nil table.
		return nt.offset + rng.Int63n(nt.size)
	}
	for {
		r := sampler.Draw(rng)
		// r.Hi is exclusive and r.Lo..r.Hi always lies within [0,p) by
		// construction, so the width is at most p and Int63n never sees a
		// zero-width range (buckets are only ever built with Count>0).
		x := r.Lo + rng.Int63n(r.Hi-r.Lo)
		y := universalHash(h.a, x, h.b, nt.p)
		if y < nt.size {
			return nt.offset + y
		}
	}
}

// Name returns the NodeType's label.
func (nt *NodeType) Name() ingestmodel.NodeType { return nt.name }

// Offset returns the first NodeID assigned to this type.
func (nt *NodeType) Offset() int64 { return nt.offset }

// Size returns the number of NodeIDs assigned to this type; every emitted
// id for this type lies in [Offset, Offset+Size).
func (nt *NodeType) Size() int64 { return nt.size }

// Prime returns the smallest prime >= Size used for the universal-hash
// permutation domain. Exposed for property tests (spec.md §8 invariant 4).
func (nt *NodeType) Prime() int64 { return nt.p }

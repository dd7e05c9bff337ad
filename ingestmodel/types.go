package ingestmodel

// NodeType is an opaque label identifying a class of nodes (e.g. "user",
// "device"). The empty string is a valid, if degenerate, type: it is what
// an edge record sees for an endpoint id it has never observed via
// ReadNode (see ReadEdge).
type NodeType string

// EdgeColor is an opaque label identifying a class of edges (e.g.
// "follows", "purchased").
type EdgeColor string

// NodeID is the identifier space used by ingest-time records, which are
// arbitrary strings (spec.md §3 speaks of signed-integer NodeIDs, but those
// only exist in the *generated* output — graphgen's synthetic IDs;
// observed input identifiers are opaque strings until then).
type NodeID = string

// Degree is a non-negative in- or out-degree count for one node, for one
// edge color.
type Degree = int64

// Count is a non-negative population or observation count.
type Count = int64

// typePair keys the SBM mixing matrix for one edge color: an observed
// (source type, target type) transition.
type typePair struct {
	From NodeType
	To   NodeType
}

// typeColor composite-keys the per-type, per-color degree histograms,
// following the "flatten nested maps to composite keys" guidance: a single
// map[typeColor]map[Degree]Count reads and writes in one hash lookup
// instead of three nested ones.
type typeColor struct {
	Type  NodeType
	Color EdgeColor
}

// Histogram maps an observed degree to the count of nodes exhibiting it,
// for one (NodeType, EdgeColor) pair. After Preprocess, a non-empty
// Histogram's values sum to the full population of that NodeType (spec.md
// §4.B padding rule); the histogram of a type no ReadNode registered (the
// empty type of unknown ids) is left unpadded.
type Histogram map[Degree]Count

// Bucket is the (degree, count-of-nodes-at-that-degree) pair form of a
// Histogram entry, used wherever order matters (graphmodel's bucket
// padding and weighting, spec.md §4.D, needs a stable sequence rather than
// Go's randomized map iteration order).
type Bucket struct {
	Degree Degree
	Count  Count
}

// Buckets returns h's entries as a Bucket slice, sorted by descending
// Degree*Count — the order spec.md §4.D's padding and weighting steps
// require. Degree ties break by ascending degree for determinism.
func (h Histogram) Buckets() []Bucket {
	out := make([]Bucket, 0, len(h))
	for d, c := range h {
		out = append(out, Bucket{Degree: d, Count: c})
	}
	sortBucketsDescWeight(out)
	return out
}

func sortBucketsDescWeight(b []Bucket) {
	// Insertion sort: histograms are small in practice (distinct degree
	// values per type/color), and a stable, allocation-free sort keeps this
	// usable in the construction hot path without importing sort for a
	// handful of elements. Falls back to sort.Slice above a modest size.
	if len(b) > 32 {
		stableSortBuckets(b)
		return
	}
	for i := 1; i < len(b); i++ {
		j := i
		for j > 0 && less(b[j], b[j-1]) {
			b[j], b[j-1] = b[j-1], b[j]
			j--
		}
	}
}

func less(a, b Bucket) bool {
	wa := a.Degree * a.Count
	wb := b.Degree * b.Count
	if wa != wb {
		return wa > wb
	}
	return a.Degree < b.Degree
}

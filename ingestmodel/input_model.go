package ingestmodel

import "sync"

// InputModel is the streaming accumulator ingest readers feed one record at
// a time. It is safe for concurrent ReadNode/ReadEdge calls — e.g. several
// goroutines each parsing one of several NODE_FILE/EDGE_FILE inputs — so
// long as Preprocess is only called once all ingest goroutines have
// finished.
//
// Preprocess is idempotent: calling it again clears and rebuilds the
// derived histograms from scratch, leaving the raw accumulators (node
// population, edge counts, SBM matrix) untouched.
type InputModel struct {
	mu sync.Mutex

	logger Logger

	nodeCount Count
	nodeTypes map[NodeType]Count
	typeOf    map[NodeID]NodeType // private: read by preprocess, kept for repeat calls

	edgeCount Count
	edgeSum   map[EdgeColor]Count
	sbm       map[EdgeColor]map[typePair]Count

	// Private per-node accumulators; Preprocess folds them into the
	// histograms below and leaves them in place. Keeping them keyed by the original ingest-time
	// NodeID (not yet a Bucket) lets preprocess group by the node's
	// *current* registered type even if ReadNode for that id arrived after
	// some of its edges did.
	outDeg map[EdgeColor]map[NodeID]Count
	inDeg  map[EdgeColor]map[NodeID]Count

	inDist  map[typeColor]Histogram
	outDist map[typeColor]Histogram

	preprocessed bool
}

// Option configures a new InputModel.
type Option func(*InputModel)

// WithLogger attaches a diagnostic-stream capability (spec.md §7). A nil
// logger argument is equivalent to omitting the option.
func WithLogger(l Logger) Option {
	return func(m *InputModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// New returns an empty InputModel ready for ReadNode/ReadEdge.
func New(opts ...Option) *InputModel {
	m := &InputModel{
		logger:    noopLogger{},
		nodeTypes: make(map[NodeType]Count),
		typeOf:    make(map[NodeID]NodeType),
		edgeSum:   make(map[EdgeColor]Count),
		sbm:       make(map[EdgeColor]map[typePair]Count),
		outDeg:    make(map[EdgeColor]map[NodeID]Count),
		inDeg:     make(map[EdgeColor]map[NodeID]Count),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ReadNode registers one observed node: increments the population of t and
// remembers id's type for later edge bookkeeping. Calling ReadNode twice
// for the same id with a different type overwrites the earlier type
// mapping but does not decrement the earlier type's population count —
// ingest data is assumed append-only, matching the TSV contract (spec.md
// §6) where a node id appears on at most one line.
func (m *InputModel) ReadNode(id NodeID, t NodeType) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nodeCount++
	m.nodeTypes[t]++
	m.typeOf[id] = t
}

// ReadEdge registers one observed edge: increments the edge-color total,
// the SBM transition count for (type(src), type(dst)), and src/dst's
// out/in degree for color.
//
// If src or dst was never registered via ReadNode, its type resolves to
// the empty NodeType (spec.md §9 open question 3) and a warning is emitted
// on the diagnostic stream; the edge is still counted, matching the
// original implementation's behavior rather than rejecting it.
func (m *InputModel) ReadEdge(src, dst NodeID, color EdgeColor) {
	m.mu.Lock()
	defer m.mu.Unlock()

	srcType, srcKnown := m.typeOf[src]
	dstType, dstKnown := m.typeOf[dst]
	if !srcKnown {
		m.logger.Warn("edge references unknown source node id; treating as untyped", "id", src, "color", color)
	}
	if !dstKnown {
		m.logger.Warn("edge references unknown target node id; treating as untyped", "id", dst, "color", color)
	}

	m.edgeCount++
	m.edgeSum[color]++

	pairs, ok := m.sbm[color]
	if !ok {
		pairs = make(map[typePair]Count)
		m.sbm[color] = pairs
	}
	pairs[typePair{From: srcType, To: dstType}]++

	out, ok := m.outDeg[color]
	if !ok {
		out = make(map[NodeID]Count)
		m.outDeg[color] = out
	}
	out[src]++

	in, ok := m.inDeg[color]
	if !ok {
		in = make(map[NodeID]Count)
		m.inDeg[color] = in
	}
	in[dst]++
}

// NodeTypePopulations returns a snapshot of the population per NodeType.
// It takes the model's lock, so it may be called at any time, before or
// after Preprocess; the snapshot reflects the ReadNode calls made so far.
func (m *InputModel) NodeTypePopulations() map[NodeType]Count {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[NodeType]Count, len(m.nodeTypes))
	for t, c := range m.nodeTypes {
		out[t] = c
	}
	return out
}

// EdgeColors returns every edge color observed during ingest.
func (m *InputModel) EdgeColors() []EdgeColor {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]EdgeColor, 0, len(m.edgeSum))
	for c := range m.edgeSum {
		out = append(out, c)
	}
	return out
}

// EdgeCount returns the total observed edge count for one color.
func (m *InputModel) EdgeCount(color EdgeColor) Count {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.edgeSum[color]
}

// SBMMatrix returns a snapshot of the observed (from-type, to-type)
// transition counts for one color, keyed by the exported TypePair to avoid
// exposing the unexported typePair type.
func (m *InputModel) SBMMatrix(color EdgeColor) map[TypePair]Count {
	m.mu.Lock()
	defer m.mu.Unlock()

	src := m.sbm[color]
	out := make(map[TypePair]Count, len(src))
	for k, v := range src {
		out[TypePair{From: k.From, To: k.To}] = v
	}
	return out
}

// TypePair is the exported mirror of typePair, returned by SBMMatrix so
// callers outside this package can range over observed transitions.
type TypePair struct {
	From NodeType
	To   NodeType
}

// InDistribution returns the preprocessed in-degree histogram for
// (t, color). Returns (nil, false) if Preprocess has not run or no degree
// was ever observed for that pair.
func (m *InputModel) InDistribution(t NodeType, color EdgeColor) (Histogram, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.inDist[typeColor{Type: t, Color: color}]
	return h, ok
}

// OutDistribution returns the preprocessed out-degree histogram for
// (t, color). Returns (nil, false) if Preprocess has not run or no degree
// was ever observed for that pair.
func (m *InputModel) OutDistribution(t NodeType, color EdgeColor) (Histogram, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.outDist[typeColor{Type: t, Color: color}]
	return h, ok
}

// Preprocessed reports whether Preprocess has been called at least once.
func (m *InputModel) Preprocessed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.preprocessed
}

// Package graphmodel holds the three-layer probability structure that
// turns a preprocessed ingestmodel.InputModel into a scaled synthetic
// graph: EdgeDistribution (per-color source/target type-pair sampling),
// NodeType (per-type, per-color degree-bucket sampling plus the
// prime-padded universal hash that turns a bucket draw into a concrete
// NodeID), and GraphModel, which owns one of each and drives parallel edge
// generation into a Writer.
//
// Every sampler in this package is built once, from an already-preprocessed
// InputModel, and is immutable and safe for concurrent use from that point
// on — the only mutable state touched during GraphModel.Generate is each
// goroutine's own RNG stream and the caller-supplied Writer.
package graphmodel

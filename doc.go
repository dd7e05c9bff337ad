// Package graphgen synthesizes a scaled-up, typed, multi-relational graph
// that is statistically similar to an observed input graph.
//
// Given a node list (identifier, node type) and an edge list (source,
// target, edge color), plus a scaling factor s>1, graphgen emits a new graph
// with approximately s times as many nodes and edges while preserving, per
// edge color:
//
//   - the per-type node population (a degree-corrected Stochastic Block
//     Model mixing matrix over type pairs),
//   - the in- and out-degree distribution per (node type, edge color),
//   - an approximately uniform, non-sequential assignment of node
//     identifiers within each type.
//
// The engine is organized under three subpackages:
//
//	alias/       — O(1) weighted discrete sampling (Vose's alias method)
//	ingestmodel/ — streaming accumulator over node/edge observations
//	graphmodel/  — the per-type and per-color samplers, and the generator
//	             — that drives parallel edge emission and sequential node
//	             — emission into a Writer
//
// Ingest parsing, configuration, output writers and the CLI entry point are
// external collaborators; graphgen's core only depends on their narrow
// interfaces (ingestmodel.InputModel as a sink, graphmodel.Writer as a
// sink), never on their concrete implementations. Those concrete pieces
// live in ingest/, config/, writer/ and cmd/graphgen respectively.
package graphgen

// Version is the semantic version of the graphgen module.
const Version = "0.1.0"

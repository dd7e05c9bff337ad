// Package ingestmodel implements InputModel, the streaming accumulator that
// ingest readers feed one record at a time. InputModel counts per-type node
// population, per-color type-pair mixing counts (the SBM matrix), and
// per-node in/out degree per color. Preprocess seals those raw counts into
// bucketed degree histograms; it keeps the private per-node accumulators
// they were derived from, since rebuilding the histograms on a repeat call
// requires them.
//
// InputModel never reads files and never chooses a writer; it is the single
// contract between the ingest layer (package ingest) and the sampling
// engine (package graphmodel). ReadNode/ReadEdge/Preprocess are the whole
// surface graphmodel.NewGraphModel needs.
package ingestmodel

// Package writer provides graphmodel.Writer implementations: TSVWriter,
// which renders nodes and edges as tab-separated records, and
// BenchmarkWriter, which discards records but tracks an approximate byte
// count and elapsed time for throughput measurement (spec.md §4.F, §9).
package writer

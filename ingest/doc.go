// Package ingest reads node and edge TSV files into an ingestmodel.InputModel
// (spec.md §6 ingest contract). It is one of the external collaborators the
// core sampling engine treats as an opaque producer: the engine only ever
// sees the InputModel ingest leaves behind.
package ingest

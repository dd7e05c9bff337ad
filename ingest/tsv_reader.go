package ingest

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/graphgen/ingestmodel"
)

// Reader is the capability boundary the core takes no dependency on
// directly: an outer driver constructs one, feeds it one configured file
// path at a time, and hands the resulting InputModel to
// graphmodel.NewGraphModel. Two methods, mirroring the two line-oriented
// TSV shapes the ingest contract defines (spec.md §9 design note on the
// polymorphic reader hierarchy). Each call returns how many records it
// read and how many malformed lines it skipped, recovered from
// original_source/src/Reader.cpp's per-file read/skip counters (dropped by
// the distillation).
type Reader interface {
	ReadNodes(path string, into *ingestmodel.InputModel) (read, skipped int, err error)
	ReadEdges(path string, into *ingestmodel.InputModel) (read, skipped int, err error)
}

// TSVReader implements Reader over tab-separated node and edge files
// (spec.md §6). The first line of every file is a header and is skipped
// unconditionally; lines with fewer tabs than required are skipped with a
// warning rather than aborting the whole file.
type TSVReader struct {
	logger Logger
}

// NewTSVReader returns a TSVReader reporting malformed lines to logger. A
// nil logger is equivalent to a no-op logger.
func NewTSVReader(logger Logger) *TSVReader {
	if logger == nil {
		logger = noopLogger{}
	}
	return &TSVReader{logger: logger}
}

// ReadNodes reads path as a node TSV: `id\ttype\t...` (trailing columns
// ignored), calling into.ReadNode for each well-formed line.
func (r *TSVReader) ReadNodes(path string, into *ingestmodel.InputModel) (int, int, error) {
	var read, skipped int
	err := r.readFile(path, func(line string) {
		fields, ok := splitFields(line, 2)
		if !ok {
			r.logger.Warn("skipping malformed node line", "file", path, "line", line)
			skipped++
			return
		}
		into.ReadNode(fields[0], ingestmodel.NodeType(fields[1]))
		read++
	})
	return read, skipped, err
}

// ReadEdges reads path as an edge TSV: `src\tdst\tcolor\t...` (trailing
// columns ignored), calling into.ReadEdge for each well-formed line.
func (r *TSVReader) ReadEdges(path string, into *ingestmodel.InputModel) (int, int, error) {
	var read, skipped int
	err := r.readFile(path, func(line string) {
		fields, ok := splitFields(line, 3)
		if !ok {
			r.logger.Warn("skipping malformed edge line", "file", path, "line", line)
			skipped++
			return
		}
		into.ReadEdge(fields[0], fields[1], ingestmodel.EdgeColor(fields[2]))
		read++
	})
	return read, skipped, err
}

// readFile opens path, skips its header line, and invokes onLine for every
// subsequent line verbatim (including its trailing columns, if any) —
// onLine is responsible for field-splitting and malformed-line reporting.
func (r *TSVReader) readFile(path string, onLine func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrOpenFile, path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil // empty file: header line absent, nothing to read
	}

	for scanner.Scan() {
		onLine(scanner.Text())
	}
	return scanner.Err()
}

// splitFields splits line on tabs and returns its first minFields
// components (i.e. minFields-1 tab boundaries); the last returned
// component ends at the next tab, so trailing columns are dropped. Returns
// ok false if line has fewer than minFields-1 tabs.
func splitFields(line string, minFields int) ([]string, bool) {
	out := make([]string, 0, minFields)
	rest := line
	for i := 0; i < minFields-1; i++ {
		idx := strings.IndexByte(rest, '\t')
		if idx < 0 {
			return nil, false
		}
		out = append(out, rest[:idx])
		rest = rest[idx+1:]
	}
	idx := strings.IndexByte(rest, '\t')
	if idx >= 0 {
		out = append(out, rest[:idx])
	} else {
		out = append(out, rest)
	}
	if len(out) < minFields {
		return nil, false
	}
	return out, true
}

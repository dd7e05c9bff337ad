package writer

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/katalvlaran/graphgen/ingestmodel"
)

// TSVWriter persists nodes and edges as tab-separated records (spec.md §6
// output format): edges as `src\tdst\tcolor\n`, nodes as `id\ttype\n`, no
// header. EmitNode and EmitEdge are safe for concurrent use — each holds
// its own mutex guarding its own buffered writer, matching the boundary
// contract's "line-level atomicity is sufficient" requirement.
type TSVWriter struct {
	nodeMu sync.Mutex
	nodeW  *bufio.Writer
	nodeF  *os.File

	edgeMu sync.Mutex
	edgeW  *bufio.Writer
	edgeF  *os.File
}

// NewTSVWriter creates (truncating) the node and edge output files at the
// given paths.
func NewTSVWriter(nodePath, edgePath string) (*TSVWriter, error) {
	nodeF, err := os.Create(nodePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, nodePath, err)
	}
	edgeF, err := os.Create(edgePath)
	if err != nil {
		nodeF.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFile, edgePath, err)
	}

	return &TSVWriter{
		nodeW: bufio.NewWriter(nodeF),
		nodeF: nodeF,
		edgeW: bufio.NewWriter(edgeF),
		edgeF: edgeF,
	}, nil
}

// EmitNode writes one `id\ttype\n` record.
func (w *TSVWriter) EmitNode(t ingestmodel.NodeType, id int64) error {
	w.nodeMu.Lock()
	defer w.nodeMu.Unlock()

	if _, err := w.nodeW.WriteString(strconv.FormatInt(id, 10)); err != nil {
		return err
	}
	if err := w.nodeW.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.nodeW.WriteString(string(t)); err != nil {
		return err
	}
	return w.nodeW.WriteByte('\n')
}

// EmitEdge writes one `src\tdst\tcolor\n` record.
func (w *TSVWriter) EmitEdge(color ingestmodel.EdgeColor, src, dst int64) error {
	w.edgeMu.Lock()
	defer w.edgeMu.Unlock()

	if _, err := w.edgeW.WriteString(strconv.FormatInt(src, 10)); err != nil {
		return err
	}
	if err := w.edgeW.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.edgeW.WriteString(strconv.FormatInt(dst, 10)); err != nil {
		return err
	}
	if err := w.edgeW.WriteByte('\t'); err != nil {
		return err
	}
	if _, err := w.edgeW.WriteString(string(color)); err != nil {
		return err
	}
	return w.edgeW.WriteByte('\n')
}

// Close flushes buffered output and releases both file handles. Safe to
// call once after generation completes; resource lifetimes are scoped to
// this call rather than finalizers (spec.md §5 resource discipline).
func (w *TSVWriter) Close() error {
	w.nodeMu.Lock()
	nodeErr := w.nodeW.Flush()
	closeNodeErr := w.nodeF.Close()
	w.nodeMu.Unlock()

	w.edgeMu.Lock()
	edgeErr := w.edgeW.Flush()
	closeEdgeErr := w.edgeF.Close()
	w.edgeMu.Unlock()

	for _, err := range []error{nodeErr, closeNodeErr, edgeErr, closeEdgeErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

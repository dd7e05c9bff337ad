// SPDX-License-Identifier: MIT
package graphmodel

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphgen/ingestmodel"
)

// GraphModel is the scaled, constructed sampling engine: one NodeType per
// observed NodeType and one EdgeDistribution per observed EdgeColor, built
// once from a preprocessed InputModel and never mutated afterward
// (spec.md §4.E).
type GraphModel struct {
	seed    int64
	workers int

	types  map[ingestmodel.NodeType]*NodeType
	order  []ingestmodel.NodeType // construction order, for deterministic offsets
	colors map[ingestmodel.EdgeColor]*EdgeDistribution

	targetEdges map[ingestmodel.EdgeColor]int64
	nodeCount   int64
}

// NewGraphModel scales every observed population and degree bucket by
// scale and constructs the full sampling engine. model must have had
// Preprocess called on it already.
func NewGraphModel(model *ingestmodel.InputModel, scale float64, opts ...Option) (*GraphModel, error) {
	if !model.Preprocessed() {
		return nil, graphmodelErrorf("NewGraphModel", ErrNotPreprocessed)
	}
	if scale <= 0 {
		return nil, graphmodelErrorf("NewGraphModel", ErrInvalidScale)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	populations := model.NodeTypePopulations()
	scaledPop := make(map[ingestmodel.NodeType]ingestmodel.Count, len(populations))

	order := make([]ingestmodel.NodeType, 0, len(populations))
	for t := range populations {
		order = append(order, t)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	for _, t := range order {
		scaledPop[t] = ingestmodel.Count(math.Floor(float64(populations[t]) * scale))
	}

	colors := model.EdgeColors()
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	gm := &GraphModel{
		seed:        cfg.seed,
		workers:     cfg.workers,
		types:       make(map[ingestmodel.NodeType]*NodeType, len(order)),
		order:       order,
		colors:      make(map[ingestmodel.EdgeColor]*EdgeDistribution, len(colors)),
		targetEdges: make(map[ingestmodel.EdgeColor]int64, len(colors)),
	}

	rng := streamRNG(cfg.seed, 0)

	var offset int64
	for _, t := range order {
		size := int64(scaledPop[t])
		if size <= 0 {
			continue
		}

		inBuckets := make(map[ingestmodel.EdgeColor]BucketSet, len(colors))
		outBuckets := make(map[ingestmodel.EdgeColor]BucketSet, len(colors))
		for _, c := range colors {
			if h, ok := model.InDistribution(t, c); ok {
				inBuckets[c] = scaleHistogram(h, scale)
			}
			if h, ok := model.OutDistribution(t, c); ok {
				outBuckets[c] = scaleHistogram(h, scale)
			}
		}

		nt, err := NewNodeType(t, offset, size, inBuckets, outBuckets, rng)
		if err != nil {
			return nil, graphmodelErrorf("NewGraphModel", err)
		}
		gm.types[t] = nt
		offset += size
	}
	gm.nodeCount = offset

	for _, c := range colors {
		sbmSrc := model.SBMMatrix(c)
		sbm := make(map[TypePair]ingestmodel.Count, len(sbmSrc))
		for pair, count := range sbmSrc {
			sbm[TypePair{From: pair.From, To: pair.To}] = count
		}

		dist, err := NewEdgeDistribution(c, scaledPop, sbm, cfg.policy)
		if err != nil {
			return nil, graphmodelErrorf("NewGraphModel", err)
		}
		gm.colors[c] = dist
		gm.targetEdges[c] = int64(math.Floor(float64(model.EdgeCount(c)) * scale))
	}

	return gm, nil
}

// scaleHistogram scales every bucket's count by scale (floor) and drops
// buckets that scale to zero (spec.md §4.E step 2) — NodeType re-pads
// zero-degree coverage itself if the scaled histogram ends up short of
// the scaled population.
func scaleHistogram(h ingestmodel.Histogram, scale float64) BucketSet {
	buckets := h.Buckets()
	out := make(BucketSet, 0, len(buckets))
	for _, b := range buckets {
		c := ingestmodel.Count(math.Floor(float64(b.Count) * scale))
		if c <= 0 {
			continue
		}
		out = append(out, ingestmodel.Bucket{Degree: b.Degree, Count: c})
	}
	return out
}

// NodeCount returns the total scaled node population across all types.
func (gm *GraphModel) NodeCount() int64 { return gm.nodeCount }

// TargetEdges returns the scaled target edge count for one color.
func (gm *GraphModel) TargetEdges(color ingestmodel.EdgeColor) int64 {
	return gm.targetEdges[color]
}

// Generate drives the full generation run: one parallel edge-generation
// phase per color, then a sequential node-emission phase (spec.md §4.E).
// ctx cancellation is observed between colors and between node-emission
// batches, and propagates the first writer error encountered, aborting
// remaining work for that color (spec §5: "aborts the process on writer
// failure").
func (gm *GraphModel) Generate(ctx context.Context, w Writer) error {
	if err := gm.generateEdges(ctx, w); err != nil {
		return err
	}
	return gm.generateNodes(ctx, w)
}

func (gm *GraphModel) generateEdges(ctx context.Context, w Writer) error {
	for streamBase, c := range colorStreamOrder(gm.colors) {
		dist := gm.colors[c]
		total := gm.targetEdges[c]
		if total <= 0 {
			continue
		}

		g, gctx := errgroup.WithContext(ctx)
		workers := gm.workers
		if int64(workers) > total {
			workers = int(total)
		}
		if workers < 1 {
			workers = 1
		}

		share := total / int64(workers)
		remainder := total % int64(workers)

		for worker := 0; worker < workers; worker++ {
			worker := worker
			n := share
			if int64(worker) < remainder {
				n++
			}
			if n <= 0 {
				continue
			}

			stream := uint64(streamBase)<<32 | uint64(worker)
			g.Go(func() error {
				rng := streamRNG(gm.seed, stream)
				for i := int64(0); i < n; i++ {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}

					pair := dist.Transition(rng)
					fromType := gm.types[pair.From]
					toType := gm.types[pair.To]
					if fromType == nil || toType == nil {
						continue
					}

					src := fromType.GetStartNode(c, rng)
					dst := toType.GetTargetNode(c, rng)
					if err := w.EmitEdge(c, src, dst); err != nil {
						return err
					}
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (gm *GraphModel) generateNodes(ctx context.Context, w Writer) error {
	for _, t := range gm.order {
		nt := gm.types[t]
		if nt == nil {
			continue
		}
		for i := int64(0); i < nt.Size(); i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := w.EmitNode(t, nt.Offset()+i); err != nil {
				return err
			}
		}
	}
	return nil
}

// colorStreamOrder returns the observed colors in a stable, sorted order
// so RNG streams derived per (color, worker) via the returned index are
// reproducible given a fixed seed and worker count regardless of the
// underlying map's iteration order.
func colorStreamOrder(colors map[ingestmodel.EdgeColor]*EdgeDistribution) []ingestmodel.EdgeColor {
	names := make([]ingestmodel.EdgeColor, 0, len(colors))
	for c := range colors {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

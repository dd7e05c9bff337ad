// SPDX-License-Identifier: MIT
package graphmodel

// Option configures a GraphModel at construction time, mirroring the
// functional-options pattern used throughout this module's sibling
// packages.
type Option func(*config)

type config struct {
	seed    int64
	workers int
	policy  weightPolicy
}

func defaultConfig() config {
	return config{
		seed:    0,
		workers: 1,
		policy:  weightFaithful,
	}
}

// WithSeed fixes the RNG seed GraphModel derives all per-stream RNGs from.
// Seed 0 is treated as "use the package default" (spec.md §5) rather than
// an literal zero seed — callers that need a wall-clock-derived seed must
// resolve that themselves (config.Load does this) and pass the result in.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWorkers bounds the number of goroutines used per color during the
// parallel edge-generation phase (spec.md §5). Values <= 0 are treated as
// 1 (sequential).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n <= 0 {
			n = 1
		}
		c.workers = n
	}
}

// WithCorrectedMixing switches EdgeDistribution's weight formula from the
// faithful N_sum^2-denominator reproduction of the original implementation
// to an ordinary single-N_sum categorical normalization (SPEC_FULL.md §L).
// Off by default: GraphModel reproduces the original's
// behavior unless a caller opts into the corrected one.
func WithCorrectedMixing() Option {
	return func(c *config) { c.policy = weightCorrected }
}

package alias

import "errors"

// ErrEmptyDistribution indicates that New was called with zero entries.
// Classification: InvalidDistribution (spec §7) — fatal at construction.
var ErrEmptyDistribution = errors.New("alias: distribution must have at least one entry")

// ErrNegativeWeight indicates that one or more supplied weights were
// negative, non-finite, or NaN, or that all of them were zero.
// Classification: InvalidDistribution (spec §7) — fatal at construction.
var ErrNegativeWeight = errors.New("alias: weights must be finite and non-negative")

// ErrLengthMismatch indicates that the weights and items slices passed to
// New had different lengths.
var ErrLengthMismatch = errors.New("alias: weights and items must have equal length")

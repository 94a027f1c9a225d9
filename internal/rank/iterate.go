package rank

import (
	"fmt"
	"math"

	"github.com/nao1215/linkrank/internal/model"
)

// Iterative estimator defaults.
const (
	// DefaultTolerance is the per-page convergence threshold: iteration
	// stops once no page's rank moved by more than this in a full sweep.
	DefaultTolerance = 0.001

	// DefaultMaxIterations caps the number of sweeps as a safety bound
	// against non-convergence. Well-formed graphs with damping < 1
	// converge in far fewer sweeps.
	DefaultMaxIterations = 1000
)

// iterator holds the configurable parts of the iterative estimator.
type iterator struct {
	tolerance     float64
	maxIterations int
}

// IterateOption configures the iterative estimator.
type IterateOption func(*iterator)

// WithTolerance overrides the per-page convergence threshold.
func WithTolerance(tolerance float64) IterateOption {
	return func(it *iterator) {
		it.tolerance = tolerance
	}
}

// WithMaxIterations overrides the iteration safety cap.
func WithMaxIterations(maxIterations int) IterateOption {
	return func(it *iterator) {
		it.maxIterations = maxIterations
	}
}

// Iterate estimates PageRank by fixed-point iteration.
//
// Every rank starts at 1/N. Each sweep computes, for every page p,
//
//	rank'[p] = (1-d)/N + d * (Σ rank[q]/L_q + Σ rank[q]/N)
//
// where the first sum ranges over pages q linking to p (L_q is q's
// out-degree) and the second over dangling pages q, which spread their
// rank uniformly to all pages. Sweeps are synchronous: every rank'[p]
// is computed from the previous sweep's ranks before any is committed.
//
// Iteration stops when no page moved by more than the tolerance in a
// full sweep. The returned count is the number of sweeps performed.
// Given the same graph and damping, the result is identical across
// calls; no state is carried between invocations.
//
// If the iteration cap is reached first, the best-so-far distribution
// is returned together with an error wrapping ErrNotConverged.
func Iterate(g *model.Graph, damping float64, opts ...IterateOption) (model.Distribution, int, error) {
	if err := validate(g, damping); err != nil {
		return nil, 0, err
	}

	it := &iterator{
		tolerance:     DefaultTolerance,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(it)
	}
	if it.tolerance <= 0 {
		return nil, 0, fmt.Errorf("%w: got %g", ErrInvalidTolerance, it.tolerance)
	}
	if it.maxIterations <= 0 {
		return nil, 0, fmt.Errorf("%w: got %d", ErrInvalidIterationCap, it.maxIterations)
	}

	pages := g.Pages()
	n := float64(len(pages))
	baseline := (1 - damping) / n

	ranks := make(model.Distribution, len(pages))
	for _, p := range pages {
		ranks[p] = 1 / n
	}

	for sweep := 1; sweep <= it.maxIterations; sweep++ {
		// Dangling pages spread their rank uniformly over all pages,
		// themselves included.
		var danglingMass float64
		for _, q := range pages {
			if g.IsDangling(q) {
				danglingMass += ranks[q]
			}
		}
		danglingShare := danglingMass / n

		next := make(model.Distribution, len(pages))
		for _, p := range pages {
			inbound := danglingShare
			for _, q := range pages {
				if g.HasLink(q, p) {
					inbound += ranks[q] / float64(g.OutDegree(q))
				}
			}
			next[p] = baseline + damping*inbound
		}

		converged := true
		for _, p := range pages {
			if math.Abs(next[p]-ranks[p]) > it.tolerance {
				converged = false
				break
			}
		}
		ranks = next
		if converged {
			return ranks, sweep, nil
		}
	}

	return ranks, it.maxIterations, fmt.Errorf("%w: %d sweeps at tolerance %g",
		ErrNotConverged, it.maxIterations, it.tolerance)
}

package rank

import (
	"fmt"
	"math/rand/v2"

	"github.com/nao1215/linkrank/internal/model"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// sampler holds the configurable parts of the sampling estimator.
type sampler struct {
	src rand.Source
}

// SampleOption configures the sampling estimator.
type SampleOption func(*sampler)

// WithSeed fixes the random source to a PCG seeded with the given value.
// Use this for reproducible runs; by default each call draws a fresh
// seed from the process-wide generator.
func WithSeed(seed uint64) SampleOption {
	return func(s *sampler) {
		s.src = rand.NewPCG(seed, seed)
	}
}

// WithSource supplies a custom random source.
func WithSource(src rand.Source) SampleOption {
	return func(s *sampler) {
		s.src = src
	}
}

// Sample estimates PageRank by simulating a random walk of n steps.
//
// The walk starts at a uniformly random page. Each subsequent page is
// drawn from the transition model of the current page via a weighted
// categorical draw. Visit counts divided by n form the estimate.
//
// Every corpus page appears in the result; pages the walk never visited
// have value 0, so the returned values always sum to exactly 1.
//
// The estimate is statistical: it approaches the Iterate result as n
// grows, but individual runs differ unless the source is fixed with
// WithSeed or WithSource.
func Sample(g *model.Graph, damping float64, n int, opts ...SampleOption) (model.Distribution, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}

	s := &sampler{}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(s.src)

	pages := g.Pages()
	counts := make(map[string]int, len(pages))

	current := pages[rng.IntN(len(pages))]
	counts[current]++

	// Reused across steps; the transition distribution itself depends on
	// the current page and is rebuilt each time.
	weights := make([]float64, len(pages))
	for step := 1; step < n; step++ {
		dist, err := Transition(g, current, damping)
		if err != nil {
			return nil, err
		}
		for i, p := range pages {
			weights[i] = dist[p]
		}
		idx, ok := sampleuv.NewWeighted(weights, s.src).Take()
		if !ok {
			return nil, fmt.Errorf("weighted draw failed: transition weights sum to zero for page %q", current)
		}
		current = pages[idx]
		counts[current]++
	}

	estimate := make(model.Distribution, len(pages))
	for _, p := range pages {
		estimate[p] = float64(counts[p]) / float64(n)
	}
	return estimate, nil
}

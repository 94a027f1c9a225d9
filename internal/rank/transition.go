package rank

import (
	"fmt"

	"github.com/nao1215/linkrank/internal/model"
)

// Default estimator parameters. These match the classic PageRank
// formulation: a surfer follows a link with probability 0.85 and jumps
// to a uniformly random page otherwise.
const (
	// DefaultDamping is the default damping factor.
	DefaultDamping = 0.85

	// DefaultSamples is the default random-walk length for Sample.
	DefaultSamples = 10000
)

// Transition returns the probability distribution over which page a
// random surfer visits next, given the current page.
//
// If the current page is dangling (no outbound links) the surfer jumps
// to a uniformly random page, ignoring the damping factor entirely.
// Otherwise every page receives the random-jump baseline (1-d)/N, and
// each page linked by the current page additionally receives d/L where
// L is the current page's out-degree. Both branches produce a
// distribution that sums to exactly 1.
func Transition(g *model.Graph, page string, damping float64) (model.Distribution, error) {
	if err := validate(g, damping); err != nil {
		return nil, err
	}
	if !g.HasPage(page) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	n := float64(g.Len())
	dist := make(model.Distribution, g.Len())

	if g.IsDangling(page) {
		uniform := 1 / n
		for _, p := range g.Pages() {
			dist[p] = uniform
		}
		return dist, nil
	}

	baseline := (1 - damping) / n
	linkShare := damping / float64(g.OutDegree(page))
	for _, p := range g.Pages() {
		dist[p] = baseline
		if g.HasLink(page, p) {
			dist[p] += linkShare
		}
	}
	return dist, nil
}

// validate rejects inputs no estimator can work with.
func validate(g *model.Graph, damping float64) error {
	if g == nil || g.Len() == 0 {
		return ErrEmptyGraph
	}
	if !(damping > 0 && damping < 1) { // also rejects NaN
		return fmt.Errorf("%w: got %g", ErrInvalidDamping, damping)
	}
	return nil
}

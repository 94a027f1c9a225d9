// Package rank implements the two PageRank estimators at the heart of
// LinkRank.
//
// # Components
//
//   - Transition: the random-surfer transition model. Given the current
//     page it yields an exact probability distribution over all pages.
//   - Sample: the sampling estimator. It simulates a long random walk
//     driven by the transition model and estimates ranks from visit
//     frequency.
//   - Iterate: the iterative estimator. It applies the PageRank
//     fixed-point recurrence with synchronous sweeps until every page's
//     rank moves by at most the tolerance.
//
// # Dangling pages
//
// A page with no outbound links is treated as linking uniformly to
// every page in the corpus, itself included. Both estimators apply this
// rule: the transition model degrades to a uniform jump, and the
// iterative recurrence redistributes a dangling page's rank uniformly.
// The damping factor combined with this redistribution keeps the
// underlying chain aperiodic, so the iteration converges geometrically
// in practice.
//
// All functions are pure: they read the graph and return fresh
// distributions without retaining state between calls.
package rank

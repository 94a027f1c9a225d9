// Package pipeline orchestrates the ranking of a single corpus as a
// sequence of steps: load the corpus graph, estimate ranks by sampling,
// estimate ranks by iteration. Steps run in order, share a RankReport,
// and respect context cancellation between steps.
package pipeline

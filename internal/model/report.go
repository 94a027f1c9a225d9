package model

import "time"

// RankReport accumulates everything produced while ranking one corpus.
// It is passed through the pipeline, with each step filling in its part,
// and is finally handed to a report writer.
type RankReport struct {
	// Corpus is the corpus directory the report was produced from.
	Corpus string `json:"corpus"`

	// PageCount is the number of pages in the corpus graph.
	PageCount int `json:"page_count"`

	// Damping is the damping factor used by both estimators.
	Damping float64 `json:"damping"`

	// Samples is the number of random-walk samples drawn.
	Samples int `json:"samples"`

	// Tolerance is the per-page convergence threshold of the
	// iterative estimator.
	Tolerance float64 `json:"tolerance"`

	// SampledRanks holds the rank estimate from the random-surfer
	// simulation. Every corpus page is present; pages the walk never
	// visited have value 0.
	SampledRanks Distribution `json:"sampled_ranks,omitempty"`

	// IteratedRanks holds the rank estimate from fixed-point iteration.
	// On non-convergence this is the best-so-far estimate.
	IteratedRanks Distribution `json:"iterated_ranks,omitempty"`

	// Iterations is the number of synchronous sweeps performed by the
	// iterative estimator.
	Iterations int `json:"iterations"`

	// Converged reports whether the iterative estimator reached the
	// tolerance before hitting its iteration cap.
	Converged bool `json:"converged"`

	// StartedAt is when ranking of this corpus began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total time spent ranking this corpus.
	Elapsed time.Duration `json:"elapsed"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Graph is the link graph the estimators consumed.
	// Excluded from JSON; the distributions are the report's payload.
	Graph *Graph `json:"-"`

	// Error holds the first fatal error encountered, if any.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error for serialized reports.
	ErrorMessage string `json:"error,omitempty"`
}

// NewRankReport creates a report for the given corpus directory.
func NewRankReport(corpusDir string) *RankReport {
	return &RankReport{
		Corpus:    corpusDir,
		StartedAt: time.Now(),
	}
}

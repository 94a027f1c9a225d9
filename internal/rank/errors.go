package rank

import "errors"

// Estimator errors.
//
// Design decision: We use package-level sentinel errors so callers can
// classify failures with errors.Is while call sites wrap them with the
// offending value via fmt.Errorf("%w: ...").
var (
	// ErrEmptyGraph is returned when an estimator receives a graph with
	// no pages. No meaningful distribution exists over zero pages.
	ErrEmptyGraph = errors.New("graph has no pages")

	// ErrUnknownPage is returned when the requested current page is not
	// a key of the graph.
	ErrUnknownPage = errors.New("page is not part of the graph")

	// ErrInvalidDamping is returned when the damping factor is outside
	// the open interval (0, 1).
	ErrInvalidDamping = errors.New("damping factor must be in (0, 1)")

	// ErrInvalidSampleCount is returned when the sampling estimator is
	// asked for a non-positive number of samples.
	ErrInvalidSampleCount = errors.New("sample count must be positive")

	// ErrInvalidTolerance is returned when the convergence tolerance is
	// not positive.
	ErrInvalidTolerance = errors.New("convergence tolerance must be positive")

	// ErrInvalidIterationCap is returned when the iteration cap is not
	// positive.
	ErrInvalidIterationCap = errors.New("iteration cap must be positive")

	// ErrNotConverged is returned by Iterate when the iteration cap is
	// reached before every page settles within the tolerance. The
	// best-so-far distribution is returned alongside this error.
	ErrNotConverged = errors.New("rank iteration did not converge")
)

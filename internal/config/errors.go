package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoCorpus is returned when no corpus directory is specified.
	ErrNoCorpus = errors.New("no corpus specified: provide one or more corpus directories")

	// ErrInvalidDamping is returned when the damping factor is outside
	// the open interval (0, 1).
	ErrInvalidDamping = errors.New("invalid damping factor: must be in (0, 1)")

	// ErrInvalidSamples is returned when the sample count is not
	// positive. Zero samples would leave nothing to estimate from.
	ErrInvalidSamples = errors.New("invalid sample count: must be positive")

	// ErrInvalidTolerance is returned when the convergence tolerance is
	// not positive.
	ErrInvalidTolerance = errors.New("invalid tolerance: must be positive")

	// ErrInvalidMaxIterations is returned when the iteration cap is not
	// positive. Without a positive cap the iterative estimator could
	// loop forever on a pathological graph.
	ErrInvalidMaxIterations = errors.New("invalid max iterations: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at
	// a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)

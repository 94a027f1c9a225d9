package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nao1215/linkrank/internal/corpus"
	"github.com/nao1215/linkrank/internal/model"
	"github.com/nao1215/linkrank/internal/rank"
)

// LoadCorpusStep builds the link graph from the report's corpus
// directory. It must run before either estimator step.
type LoadCorpusStep struct {
	loader *corpus.Loader
	logger *slog.Logger
}

// NewLoadCorpusStep creates the corpus loading step.
func NewLoadCorpusStep(loader *corpus.Loader, logger *slog.Logger) *LoadCorpusStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoadCorpusStep{loader: loader, logger: logger}
}

// Name returns the step name.
func (s *LoadCorpusStep) Name() string {
	return "load_corpus"
}

// Do loads the corpus directory into report.Graph.
func (s *LoadCorpusStep) Do(_ context.Context, report *model.RankReport) error {
	g, err := s.loader.Load(report.Corpus)
	if err != nil {
		return err
	}
	report.Graph = g
	report.PageCount = g.Len()
	s.logger.Debug("corpus graph built", "corpus", report.Corpus, "pages", g.Len())
	return nil
}

// SampleStep runs the sampling estimator over the loaded graph.
type SampleStep struct {
	damping float64
	samples int
	seed    uint64
	logger  *slog.Logger
}

// NewSampleStep creates the sampling estimator step. A zero seed means
// a fresh random source per run.
func NewSampleStep(damping float64, samples int, seed uint64, logger *slog.Logger) *SampleStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &SampleStep{damping: damping, samples: samples, seed: seed, logger: logger}
}

// Name returns the step name.
func (s *SampleStep) Name() string {
	return "sample_rank"
}

// Do estimates ranks by random-walk sampling.
func (s *SampleStep) Do(_ context.Context, report *model.RankReport) error {
	if report.Graph == nil {
		return fmt.Errorf("sampling requires a loaded corpus graph")
	}

	var opts []rank.SampleOption
	if s.seed != 0 {
		opts = append(opts, rank.WithSeed(s.seed))
	}

	start := time.Now()
	dist, err := rank.Sample(report.Graph, s.damping, s.samples, opts...)
	if err != nil {
		return err
	}

	report.Damping = s.damping
	report.Samples = s.samples
	report.SampledRanks = dist
	s.logger.Debug("sampling estimator finished",
		"corpus", report.Corpus,
		"samples", s.samples,
		"elapsed", time.Since(start),
	)
	return nil
}

// IterateStep runs the iterative estimator over the loaded graph.
type IterateStep struct {
	damping       float64
	tolerance     float64
	maxIterations int
	logger        *slog.Logger
}

// NewIterateStep creates the iterative estimator step.
func NewIterateStep(damping, tolerance float64, maxIterations int, logger *slog.Logger) *IterateStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &IterateStep{
		damping:       damping,
		tolerance:     tolerance,
		maxIterations: maxIterations,
		logger:        logger,
	}
}

// Name returns the step name.
func (s *IterateStep) Name() string {
	return "iterate_rank"
}

// Do estimates ranks by fixed-point iteration.
//
// Non-convergence is not treated as a step failure: the best-so-far
// distribution is recorded with Converged=false and the run continues,
// so the report still surfaces the condition to the user.
func (s *IterateStep) Do(_ context.Context, report *model.RankReport) error {
	if report.Graph == nil {
		return fmt.Errorf("iteration requires a loaded corpus graph")
	}

	dist, iterations, err := rank.Iterate(report.Graph, s.damping,
		rank.WithTolerance(s.tolerance),
		rank.WithMaxIterations(s.maxIterations),
	)
	switch {
	case err == nil:
		report.Converged = true
	case errors.Is(err, rank.ErrNotConverged):
		report.Converged = false
		report.ErrorMessage = err.Error()
		s.logger.Warn("iteration hit the safety cap",
			"corpus", report.Corpus,
			"iterations", iterations,
			"tolerance", s.tolerance,
		)
	default:
		return err
	}

	report.Damping = s.damping
	report.Tolerance = s.tolerance
	report.IteratedRanks = dist
	report.Iterations = iterations
	s.logger.Debug("iterative estimator finished",
		"corpus", report.Corpus,
		"iterations", iterations,
		"converged", report.Converged,
	)
	return nil
}

// DefaultPipelineConfig holds the parameters of the default pipeline.
type DefaultPipelineConfig struct {
	damping       float64
	samples       int
	tolerance     float64
	maxIterations int
	seed          uint64
}

// DefaultPipelineOption configures the default pipeline.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineDamping sets the damping factor for both estimators.
func WithPipelineDamping(damping float64) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.damping = damping
	}
}

// WithPipelineSamples sets the random-walk length.
func WithPipelineSamples(samples int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.samples = samples
	}
}

// WithPipelineTolerance sets the convergence threshold.
func WithPipelineTolerance(tolerance float64) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.tolerance = tolerance
	}
}

// WithPipelineMaxIterations sets the iteration safety cap.
func WithPipelineMaxIterations(maxIterations int) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.maxIterations = maxIterations
	}
}

// WithPipelineSeed fixes the sampling estimator's random seed.
func WithPipelineSeed(seed uint64) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.seed = seed
	}
}

// DefaultPipeline creates the standard ranking pipeline: load the
// corpus, run the sampling estimator, run the iterative estimator.
func DefaultPipeline(loader *corpus.Loader, pipelineOpts []Option, opts ...DefaultPipelineOption) *Pipeline {
	cfg := &DefaultPipelineConfig{
		damping:       rank.DefaultDamping,
		samples:       rank.DefaultSamples,
		tolerance:     rank.DefaultTolerance,
		maxIterations: rank.DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	p := New(pipelineOpts...)
	p.AddSteps(
		NewLoadCorpusStep(loader, p.logger),
		NewSampleStep(cfg.damping, cfg.samples, cfg.seed, p.logger),
		NewIterateStep(cfg.damping, cfg.tolerance, cfg.maxIterations, p.logger),
	)
	return p
}

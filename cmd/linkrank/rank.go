package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/nao1215/linkrank/internal/config"
	"github.com/nao1215/linkrank/internal/corpus"
	"github.com/nao1215/linkrank/internal/model"
	"github.com/nao1215/linkrank/internal/pipeline"
	"github.com/nao1215/linkrank/internal/report"
	"github.com/spf13/cobra"
)

// NewRankCmd creates the rank command.
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [corpus-directory]...",
		Short: "Estimate PageRank for a corpus of HTML documents",
		Long: `Rank builds a link graph from a directory of HTML documents and
estimates each page's PageRank with two independent methods:

- Sampling: a long random walk driven by the surfer transition model;
  visit frequencies form the estimate.
- Iteration: the PageRank fixed-point recurrence, swept synchronously
  until every page's rank settles within the tolerance.

Only links between pages of the same corpus count; self-links and
external links are ignored. Pages without outbound links spread their
rank uniformly over the whole corpus.

Examples:
  # Rank a single corpus
  linkrank rank ./corpus

  # Rank several corpora in one run
  linkrank rank ./corpus0 ./corpus1 ./corpus2

  # Tune the estimators
  linkrank rank --damping 0.9 --samples 100000 ./corpus

  # Reproducible sampling
  linkrank rank --seed 42 ./corpus

  # Output Markdown to a file
  linkrank rank --markdown --output report.md ./corpus

Configuration file (.linkrank) example:
  defaults:
    samples: 50000
  corpora:
    corpus2:
      damping: 0.9
      tolerance: 0.0001`,
		Args: cobra.ArbitraryArgs,
		RunE: runRankCmd,
	}

	// Estimator flags
	cmd.Flags().Float64P("damping", "d", config.NewConfig().Damping,
		"Damping factor in (0, 1): probability of following a link")
	cmd.Flags().IntP("samples", "n", config.NewConfig().Samples,
		"Number of random-walk samples for the sampling estimator")
	cmd.Flags().Float64P("tolerance", "t", config.NewConfig().Tolerance,
		"Per-page convergence threshold for the iterative estimator")
	cmd.Flags().IntP("max-iterations", "i", config.NewConfig().MaxIterations,
		"Safety cap on iterative sweeps before giving up")
	cmd.Flags().Uint64P("seed", "s", 0,
		"Fixed random seed for reproducible sampling (0 = fresh seed)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .linkrank in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runRankCmd executes the rank command.
func runRankCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := setupLogger(getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runRank(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Damping, err = cmd.Flags().GetFloat64("damping")
	if err != nil {
		return nil, err
	}

	cfg.Samples, err = cmd.Flags().GetInt("samples")
	if err != nil {
		return nil, err
	}

	cfg.Tolerance, err = cmd.Flags().GetFloat64("tolerance")
	if err != nil {
		return nil, err
	}

	cfg.MaxIterations, err = cmd.Flags().GetInt("max-iterations")
	if err != nil {
		return nil, err
	}

	cfg.Seed, err = cmd.Flags().GetUint64("seed")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load per-corpus overrides from the config file.
	// If the user explicitly specified a path, a missing file is an
	// error; otherwise silently fall back to an empty config.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cfg.CorpusConfigs, err = config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	} else {
		cfg.CorpusConfigs = &config.File{
			Corpora: make(map[string]config.CorpusConfig),
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	// Positional arguments are corpus directories
	cfg.Corpora = args

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// runRank ranks each corpus directory in turn.
// A failing corpus does not stop the remaining ones; the command exits
// with an error if any corpus failed.
func runRank(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting rank",
		"corpora", cfg.Corpora,
		"damping", cfg.Damping,
		"samples", cfg.Samples,
	)

	output, closeOutput, err := openOutput(cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	loader := corpus.NewLoader(corpus.WithLogger(logger))

	var failed int
	for _, dir := range cfg.Corpora {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := createPipelineForCorpus(loader, logger, cfg, dir)

		rankReport := model.NewRankReport(dir)
		if err := p.Execute(ctx, rankReport); err != nil {
			logger.Error("rank failed", "corpus", dir, "error", err)
			fmt.Fprintf(os.Stderr, "Rank error for %s: %v\n", dir, err)
			failed++
			continue
		}
		rankReport.Elapsed = time.Since(rankReport.StartedAt)

		if err := outputReport(cfg, output, rankReport); err != nil {
			logger.Error("report failed", "corpus", dir, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("ranking failed for %d of %d corpora", failed, len(cfg.Corpora))
	}
	return nil
}

// createPipelineForCorpus creates a pipeline with per-corpus overrides
// applied over the global configuration. Overrides from the config file
// win when non-zero, matching the file's purpose of pinning corpus
// behavior across runs.
func createPipelineForCorpus(loader *corpus.Loader, logger *slog.Logger, cfg *config.Config, dir string) *pipeline.Pipeline {
	override := cfg.CorpusConfigs.GetCorpusConfig(filepath.Base(filepath.Clean(dir)))

	damping := cfg.Damping
	if override.Damping != 0 {
		damping = override.Damping
	}
	samples := cfg.Samples
	if override.Samples != 0 {
		samples = override.Samples
	}
	tolerance := cfg.Tolerance
	if override.Tolerance != 0 {
		tolerance = override.Tolerance
	}
	maxIterations := cfg.MaxIterations
	if override.MaxIterations != 0 {
		maxIterations = override.MaxIterations
	}

	return pipeline.DefaultPipeline(loader,
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.WithPipelineDamping(damping),
		pipeline.WithPipelineSamples(samples),
		pipeline.WithPipelineTolerance(tolerance),
		pipeline.WithPipelineMaxIterations(maxIterations),
		pipeline.WithPipelineSeed(cfg.Seed),
	)
}

// openOutput returns the report destination: the given file (parent
// directories created as needed) or stdout when path is empty.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// outputReport renders the report in the requested format.
func outputReport(cfg *config.Config, output io.Writer, rankReport *model.RankReport) error {
	var w report.Writer
	switch {
	case cfg.JSONReport:
		w = report.NewJSONWriter(output)
	case cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output)
	}

	_, err := w.Write(rankReport)
	return err
}

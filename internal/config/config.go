package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/linkrank/internal/rank"
)

// AppName is the application name used for XDG directory paths.
const AppName = "linkrank"

// Config holds all configuration options for LinkRank.
// This struct is populated from CLI flags (and optionally a config
// file) and passed through the application via dependency injection
// rather than global state.
//
// Design decision: We use a single flat struct instead of nested
// structs because the number of options is small. The implicit global
// SAMPLES constant of the original tool becomes the explicit Samples
// field here, threaded through the sampling estimator's contract.
type Config struct {
	// Damping is the damping factor for both estimators: the
	// probability of following a link rather than jumping to a
	// uniformly random page. Must lie in (0, 1).
	Damping float64

	// Samples is the random-walk length of the sampling estimator.
	Samples int

	// Tolerance is the per-page convergence threshold of the iterative
	// estimator.
	Tolerance float64

	// MaxIterations caps the iterative estimator's sweeps as a safety
	// bound against non-convergence.
	MaxIterations int

	// Seed fixes the sampling estimator's random source when non-zero.
	// Zero means a fresh seed per run.
	Seed uint64

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file instead of stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches for .linkrank in the current directory, the
	// home directory, and the XDG config directory.
	ConfigFilePath string

	// CorpusConfigs holds per-corpus overrides loaded from the config
	// file.
	CorpusConfigs *File

	// Corpora is the list of corpus directories to rank.
	// Must contain at least one entry.
	Corpora []string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor instead of relying on zero
// values because the estimator defaults are non-zero, and the
// constructor documents what they are.
func NewConfig() *Config {
	return &Config{
		Damping:       rank.DefaultDamping,
		Samples:       rank.DefaultSamples,
		Tolerance:     rank.DefaultTolerance,
		MaxIterations: rank.DefaultMaxIterations,
	}
}

// XDGConfigDir returns the XDG config directory for LinkRank.
// On Linux: ~/.config/linkrank
// On macOS: ~/Library/Application Support/linkrank
// On Windows: %APPDATA%\linkrank
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first error found; fixing one error often makes
// others irrelevant.
func (c *Config) Validate() error {
	if len(c.Corpora) == 0 {
		return ErrNoCorpus
	}
	if c.Damping <= 0 || c.Damping >= 1 {
		return ErrInvalidDamping
	}
	if c.Samples <= 0 {
		return ErrInvalidSamples
	}
	if c.Tolerance <= 0 {
		return ErrInvalidTolerance
	}
	if c.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

package config

// CorpusConfig holds estimator overrides for a single corpus.
// This allows tuning the estimators per corpus without repeating CLI
// flags: a large corpus may want more samples, a slow-converging one a
// looser tolerance.
type CorpusConfig struct {
	// Damping overrides the global damping factor for this corpus.
	// If zero, the global value is used.
	Damping float64 `yaml:"damping,omitempty"`

	// Samples overrides the global random-walk length for this corpus.
	// If zero, the global value is used.
	Samples int `yaml:"samples,omitempty"`

	// Tolerance overrides the global convergence threshold for this
	// corpus. If zero, the global value is used.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// MaxIterations overrides the global iteration cap for this corpus.
	// If zero, the global value is used.
	MaxIterations int `yaml:"maxIterations,omitempty"`
}

// File represents the structure of the .linkrank configuration file.
type File struct {
	// Corpora maps corpus directory names (the base name, not the full
	// path) to their overrides.
	Corpora map[string]CorpusConfig `yaml:"corpora,omitempty"`

	// Defaults contains overrides applied to every corpus unless a
	// corpus-specific entry overrides them again.
	Defaults CorpusConfig `yaml:"defaults,omitempty"`
}

// GetCorpusConfig returns the configuration for a corpus directory
// name, merging the corpus-specific entry over the defaults.
func (cf *File) GetCorpusConfig(name string) CorpusConfig {
	result := cf.Defaults

	if override, ok := cf.Corpora[name]; ok {
		if override.Damping != 0 {
			result.Damping = override.Damping
		}
		if override.Samples != 0 {
			result.Samples = override.Samples
		}
		if override.Tolerance != 0 {
			result.Tolerance = override.Tolerance
		}
		if override.MaxIterations != 0 {
			result.MaxIterations = override.MaxIterations
		}
	}

	return result
}

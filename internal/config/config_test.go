package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestNewConfig tests default configuration values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Damping != 0.85 {
		t.Errorf("expected default damping 0.85, got %g", cfg.Damping)
	}
	if cfg.Samples != 10000 {
		t.Errorf("expected default samples 10000, got %d", cfg.Samples)
	}
	if cfg.Tolerance != 0.001 {
		t.Errorf("expected default tolerance 0.001, got %g", cfg.Tolerance)
	}
	if cfg.MaxIterations != 1000 {
		t.Errorf("expected default max iterations 1000, got %d", cfg.MaxIterations)
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.Corpora = []string{"corpus"}
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config passes",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "no corpus",
			mutate:  func(c *Config) { c.Corpora = nil },
			wantErr: ErrNoCorpus,
		},
		{
			name:    "damping at lower bound",
			mutate:  func(c *Config) { c.Damping = 0 },
			wantErr: ErrInvalidDamping,
		},
		{
			name:    "damping at upper bound",
			mutate:  func(c *Config) { c.Damping = 1 },
			wantErr: ErrInvalidDamping,
		},
		{
			name:    "non-positive samples",
			mutate:  func(c *Config) { c.Samples = 0 },
			wantErr: ErrInvalidSamples,
		},
		{
			name:    "non-positive tolerance",
			mutate:  func(c *Config) { c.Tolerance = -0.001 },
			wantErr: ErrInvalidTolerance,
		},
		{
			name:    "non-positive iteration cap",
			mutate:  func(c *Config) { c.MaxIterations = 0 },
			wantErr: ErrInvalidMaxIterations,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestLoadConfigFile tests YAML config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads defaults and corpus overrides", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".linkrank")
		content := `defaults:
  samples: 50000
corpora:
  corpus2:
    damping: 0.9
    tolerance: 0.0001
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}

		if cf.Defaults.Samples != 50000 {
			t.Errorf("expected default samples 50000, got %d", cf.Defaults.Samples)
		}

		merged := cf.GetCorpusConfig("corpus2")
		if merged.Damping != 0.9 {
			t.Errorf("expected damping 0.9, got %g", merged.Damping)
		}
		if merged.Samples != 50000 {
			t.Errorf("expected inherited samples 50000, got %d", merged.Samples)
		}
		if merged.Tolerance != 0.0001 {
			t.Errorf("expected tolerance 0.0001, got %g", merged.Tolerance)
		}

		other := cf.GetCorpusConfig("unknown")
		if other.Samples != 50000 || other.Damping != 0 {
			t.Errorf("expected pure defaults for unknown corpus, got %+v", other)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".linkrank")
		if err := os.WriteFile(path, []byte("corpora: [not a map"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFindConfigFile tests config file resolution.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit path wins when it exists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("missing explicit path yields empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty result, got %s", got)
		}
	})
}

// Package config provides configuration structures and utilities for
// LinkRank. It defines the estimator parameters, report format options,
// and the .linkrank YAML file with per-corpus overrides.
package config

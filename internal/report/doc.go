// Package report renders rank reports in multiple formats: a
// human-readable text format for terminal display, JSON for machine
// consumption, and GitHub-flavored Markdown for documentation.
package report

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/linkrank/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// Pages are listed in sorted order with four decimal digits, one
// section per estimator.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because it works in all terminals and pipes cleanly to
// files or other tools.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.RankReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)

	if report.SampledRanks != nil {
		fmt.Fprintf(&sb, "PageRank Results from Sampling (n = %d)\n", report.Samples)
		w.writeRanks(&sb, report.SampledRanks)
		sb.WriteString("\n")
	}

	if report.IteratedRanks != nil {
		fmt.Fprintf(&sb, "PageRank Results from Iteration (%d sweeps)\n", report.Iterations)
		w.writeRanks(&sb, report.IteratedRanks)
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with corpus information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.RankReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                    LINKRANK REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Corpus:       %s\n", report.Corpus)
	fmt.Fprintf(sb, "Pages:        %d\n", report.PageCount)
	fmt.Fprintf(sb, "Damping:      %g\n", report.Damping)
	if report.Elapsed > 0 {
		fmt.Fprintf(sb, "Elapsed:      %s\n", report.Elapsed.Round(time.Millisecond))
	}

	switch {
	case report.ErrorMessage != "" && report.IteratedRanks == nil && report.SampledRanks == nil:
		fmt.Fprintf(sb, "Status:       ERROR - %s\n", report.ErrorMessage)
	case !report.Converged && report.IteratedRanks != nil:
		fmt.Fprintf(sb, "Status:       NOT CONVERGED after %d sweeps (best-effort ranks)\n", report.Iterations)
	default:
		sb.WriteString("Status:       Complete\n")
	}

	sb.WriteString("\n")
}

// writeRanks writes one rank per line, pages in sorted order.
func (w *SimpleWriter) writeRanks(sb *strings.Builder, dist model.Distribution) {
	for _, page := range dist.Pages() {
		fmt.Fprintf(sb, "  %s: %.4f\n", page, dist[page])
	}
}

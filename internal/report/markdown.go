package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/linkrank/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation: type-safe tables and headers beat hand-rolled
// string concatenation.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.RankReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	if report.SampledRanks != nil {
		md.H2(fmt.Sprintf("Sampling Estimate (n = %d)", report.Samples))
		md.PlainText("")
		w.writeRankTable(md, report.SampledRanks)
		md.PlainText("")
	}

	if report.IteratedRanks != nil {
		md.H2(fmt.Sprintf("Iterative Estimate (%d sweeps)", report.Iterations))
		md.PlainText("")
		w.writeRankTable(md, report.IteratedRanks)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with corpus information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.RankReport) {
	md.H1("LinkRank Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Corpus", "`" + report.Corpus + "`"},
			{"Pages", strconv.Itoa(report.PageCount)},
			{"Damping", strconv.FormatFloat(report.Damping, 'g', -1, 64)},
			{"Elapsed", report.Elapsed.Round(time.Millisecond).String()},
			{"Status", w.statusText(report)},
		},
	})
	md.PlainText("")
}

// statusText returns the status cell based on report state.
func (w *MarkdownWriter) statusText(report *model.RankReport) string {
	if report.ErrorMessage != "" && report.IteratedRanks == nil && report.SampledRanks == nil {
		return "❌ Error - " + report.ErrorMessage
	}
	if !report.Converged && report.IteratedRanks != nil {
		return fmt.Sprintf("⚠️ Not converged after %d sweeps (best-effort ranks)", report.Iterations)
	}
	return "✅ Complete"
}

// writeRankTable writes one estimator's distribution as a table,
// pages in sorted order with four decimal digits.
func (w *MarkdownWriter) writeRankTable(md *markdown.Markdown, dist model.Distribution) {
	rows := make([][]string, 0, len(dist))
	for _, page := range dist.Pages() {
		rows = append(rows, []string{"`" + page + "`", fmt.Sprintf("%.4f", dist[page])})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Page", "Rank"},
		Rows:   rows,
	})
}

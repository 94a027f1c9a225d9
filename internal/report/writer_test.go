package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/linkrank/internal/model"
)

// testReport builds a completed report for writer tests.
func testReport() *model.RankReport {
	return &model.RankReport{
		Corpus:    "testdata/corpus0",
		PageCount: 3,
		Damping:   0.85,
		Samples:   10000,
		Tolerance: 0.001,
		SampledRanks: model.Distribution{
			"a.html": 0.3333,
			"b.html": 0.4219,
			"c.html": 0.2448,
		},
		IteratedRanks: model.Distribution{
			"a.html": 0.3334,
			"b.html": 0.4215,
			"c.html": 0.2451,
		},
		Iterations: 12,
		Converged:  true,
		StartedAt:  time.Now(),
		Elapsed:    42 * time.Millisecond,
	}
}

// TestSimpleWriter tests the human-readable text format.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("renders both estimates with four decimals in sorted order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(testReport())
		if err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, buffer has %d", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"LINKRANK REPORT",
			"Corpus:       testdata/corpus0",
			"PageRank Results from Sampling (n = 10000)",
			"PageRank Results from Iteration (12 sweeps)",
			"  a.html: 0.3333",
			"  b.html: 0.4219",
			"Status:       Complete",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}

		// Sorted order within a section
		if strings.Index(out, "a.html") > strings.Index(out, "b.html") {
			t.Error("expected a.html before b.html")
		}
	})

	t.Run("flags non-convergence", func(t *testing.T) {
		t.Parallel()

		report := testReport()
		report.Converged = false
		report.Iterations = 1000

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(report); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !strings.Contains(buf.String(), "NOT CONVERGED after 1000 sweeps") {
			t.Errorf("expected non-convergence status:\n%s", buf.String())
		}
	})
}

// TestJSONWriter tests the JSON format.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewJSONWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["corpus"] != "testdata/corpus0" {
		t.Errorf("expected corpus field, got %v", decoded["corpus"])
	}
	if decoded["converged"] != true {
		t.Errorf("expected converged true, got %v", decoded["converged"])
	}
	ranks, ok := decoded["iterated_ranks"].(map[string]any)
	if !ok {
		t.Fatalf("expected iterated_ranks object, got %T", decoded["iterated_ranks"])
	}
	if len(ranks) != 3 {
		t.Errorf("expected 3 iterated ranks, got %d", len(ranks))
	}
}

// TestMarkdownWriter tests the Markdown format.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewMarkdownWriter(&buf).Write(testReport()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# LinkRank Report",
		"## Sampling Estimate (n = 10000)",
		"## Iterative Estimate (12 sweeps)",
		"`a.html`",
		"0.4219",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

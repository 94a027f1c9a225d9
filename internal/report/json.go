package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/linkrank/internal/model"
)

// JSONWriter outputs reports as indented JSON.
// This format is intended for machine consumption and archiving.
type JSONWriter struct {
	baseWriter
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as JSON.
// The report is encoded to a buffer first so a marshalling failure
// never produces partial output.
func (w *JSONWriter) Write(report *model.RankReport) (int, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

package output

import (
	"encoding/json"
	"io"

	"github.com/vegasq/tripstat/internal/engine"
)

// JSONFormatter writes the report as a single JSON document.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer.
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format encodes the report, indented for readability.
func (j *JSONFormatter) Format(report *engine.Report) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

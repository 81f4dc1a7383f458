package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/tripstat/internal/engine"
)

// CSVFormatter writes one row per partition: the global stats row in
// filter mode, one row per group key in group mode.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer.
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the report as CSV with a header row.
func (c *CSVFormatter) Format(report *engine.Report) error {
	csvWriter := csv.NewWriter(c.writer)

	if report.Groups != nil {
		header := append([]string{keyColumn(report)}, statsColumns...)
		if err := csvWriter.Write(header); err != nil {
			return err
		}
		for _, g := range report.Groups {
			record := append([]string{sanitize(g.Key.String())}, statsRecord(g.Stats)...)
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
	} else {
		if err := csvWriter.Write(statsColumns); err != nil {
			return err
		}
		if err := csvWriter.Write(statsRecord(report.Stats)); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// sanitize guards group keys against CSV injection by prefixing characters
// that could trigger formula execution in spreadsheet applications.
func sanitize(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(s, "'", "''")
	}
	return s
}

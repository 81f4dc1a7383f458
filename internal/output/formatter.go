package output

import (
	"io"
	"strconv"

	"github.com/vegasq/tripstat/internal/engine"
)

// Formatter renders one report to a writer.
type Formatter interface {
	// Format writes the report in the formatter's specific format
	Format(report *engine.Report) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// statsColumns is the column order shared by the tabular formatters and
// the parquet writer.
var statsColumns = []string{"count", "min", "max", "mean", "stddev"}

// statsRecord renders one partition as display strings in statsColumns
// order. Undefined statistics render as NULL.
func statsRecord(s engine.Stats) []string {
	return []string{
		strconv.FormatInt(s.Count, 10),
		s.Min.String(),
		s.Max.String(),
		formatFloat(s.Mean),
		formatFloat(s.StdDev),
	}
}

func formatFloat(f *float64) string {
	if f == nil {
		return "NULL"
	}
	return strconv.FormatFloat(*f, 'g', -1, 64)
}

// keyColumn names the group key column for tabular output, falling back
// to a generic label when the report does not carry the grouping column
// name.
func keyColumn(report *engine.Report) string {
	if report.GroupBy != "" {
		return report.GroupBy
	}
	return "group"
}

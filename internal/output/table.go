package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/tripstat/internal/engine"
)

// TableFormatter renders the report as an ASCII table for the console,
// preceded by a short summary of the query.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new console table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer.
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes the summary lines and the stats table.
func (t *TableFormatter) Format(report *engine.Report) error {
	if _, err := fmt.Fprintf(t.writer, "attribute: %s\nmatched rows: %d\n", report.Attribute, report.MatchedRows); err != nil {
		return err
	}
	if report.MatchedRows == 0 {
		_, err := fmt.Fprintln(t.writer, "no rows match the given filters")
		return err
	}

	tw := tablewriter.NewWriter(t.writer)
	if report.Groups != nil {
		tw.SetHeader(append([]string{keyColumn(report)}, statsColumns...))
		for _, g := range report.Groups {
			tw.Append(append([]string{g.Key.String()}, statsRecord(g.Stats)...))
		}
	} else {
		tw.SetHeader(statsColumns)
		tw.Append(statsRecord(report.Stats))
	}
	tw.Render()
	return nil
}

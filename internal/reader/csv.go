package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/vegasq/tripstat/internal/table"
)

// csvTimeLayouts are the timestamp formats accepted in CSV cells, tried in
// order. The first two match how trip record exports render pickup and
// dropoff times.
var csvTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// ReadCSV reads a headered CSV file into a typed table. Column types are
// sniffed from the first non-empty cell of each column: integer, float,
// timestamp, or bool, falling back to string. Empty cells read as null.
func ReadCSV(path string) (*table.MemTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	cr := csv.NewReader(file)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	var records [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		records = append(records, record)
	}

	columns := make([]table.Column, len(header))
	for i, name := range header {
		columns[i] = table.Column{Name: name, Kind: sniffKind(records, i)}
	}
	schema := table.NewSchema(columns...)

	tbl := table.NewMemTable(schema)
	for _, record := range records {
		row := make(table.Row, len(columns))
		for i, col := range columns {
			if i >= len(record) || record[i] == "" {
				continue
			}
			v, err := parseCell(record[i], col.Kind)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", col.Name, err)
			}
			row[col.Name] = v
		}
		tbl.Append(row)
	}
	return tbl, nil
}

// sniffKind inspects the first non-empty cell of a column.
func sniffKind(records [][]string, col int) table.Kind {
	for _, record := range records {
		if col >= len(record) || record[col] == "" {
			continue
		}
		return kindOfCell(record[col])
	}
	return table.String
}

func kindOfCell(s string) table.Kind {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return table.Numeric
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return table.Numeric
	}
	if _, ok := parseCSVTime(s); ok {
		return table.Timestamp
	}
	if _, err := strconv.ParseBool(s); err == nil {
		return table.Bool
	}
	return table.String
}

func parseCell(s string, kind table.Kind) (table.Value, error) {
	switch kind {
	case table.Numeric:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return table.IntValue(i), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return table.Null(), fmt.Errorf("cannot parse %q as number", s)
		}
		return table.FloatValue(f), nil
	case table.Timestamp:
		t, ok := parseCSVTime(s)
		if !ok {
			return table.Null(), fmt.Errorf("cannot parse %q as timestamp", s)
		}
		return table.TimeValue(t), nil
	case table.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return table.Null(), fmt.Errorf("cannot parse %q as bool", s)
		}
		return table.BoolValue(b), nil
	default:
		return table.StringValue(s), nil
	}
}

func parseCSVTime(s string) (time.Time, bool) {
	for _, layout := range csvTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

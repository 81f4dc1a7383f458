package output

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tripstat/internal/engine"
	"github.com/vegasq/tripstat/internal/table"
)

// statsRow is the parquet shape of one partition. Statistics that are
// undefined for a partition stay null in the file; min and max are
// widened to doubles for a uniform column type.
type statsRow struct {
	GroupKey *string  `parquet:"group_key,optional"`
	Count    int64    `parquet:"count"`
	Min      *float64 `parquet:"min,optional"`
	Max      *float64 `parquet:"max,optional"`
	Mean     *float64 `parquet:"mean,optional"`
	StdDev   *float64 `parquet:"stddev,optional"`
}

// WriteParquet persists the reduced result set: one row per group in group
// mode, the single global stats row otherwise. An existing file at path is
// overwritten.
func WriteParquet(path string, report *engine.Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rows []statsRow
	if report.Groups != nil {
		for _, g := range report.Groups {
			key := g.Key.String()
			rows = append(rows, toStatsRow(&key, g.Stats))
		}
	} else {
		rows = append(rows, toStatsRow(nil, report.Stats))
	}

	writer := parquet.NewGenericWriter[statsRow](file)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteTableParquet persists a whole table, used by the CSV conversion
// path. The parquet schema is built from the table schema: strings,
// timestamps (millisecond unit) and bools map directly, and numeric
// columns widen to doubles so mixed int/float columns stay uniform.
func WriteTableParquet(path string, tbl table.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	group := parquet.Group{}
	for _, col := range tbl.Schema().Columns() {
		group[col.Name] = parquet.Optional(leafFor(col.Kind))
	}
	schema := parquet.NewSchema("table", group)

	writer := parquet.NewGenericWriter[map[string]interface{}](file, schema)

	it := tbl.Rows()
	for {
		row, ok := it.Next()
		if !ok {
			break
		}
		record := make(map[string]interface{}, len(row))
		for _, col := range tbl.Schema().Columns() {
			v := row.Value(col.Name)
			if v.IsNull() {
				continue
			}
			if col.Kind == table.Numeric {
				f, _ := v.AsFloat()
				record[col.Name] = f
				continue
			}
			record[col.Name] = v.Go()
		}
		if _, err := writer.Write([]map[string]interface{}{record}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func leafFor(kind table.Kind) parquet.Node {
	switch kind {
	case table.String:
		return parquet.String()
	case table.Timestamp:
		return parquet.Timestamp(parquet.Millisecond)
	case table.Bool:
		return parquet.Leaf(parquet.BooleanType)
	default:
		return parquet.Leaf(parquet.DoubleType)
	}
}

func toStatsRow(key *string, s engine.Stats) statsRow {
	row := statsRow{GroupKey: key, Count: s.Count, Mean: s.Mean, StdDev: s.StdDev}
	if f, ok := s.Min.AsFloat(); ok {
		row.Min = &f
	}
	if f, ok := s.Max.AsFloat(); ok {
		row.Max = &f
	}
	return row
}

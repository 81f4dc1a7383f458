// Package table defines the columnar data model the query engine runs
// against: a typed schema, tagged scalar values, and an immutable table
// with stable-order row iteration.
//
// The model is deliberately small. Columns carry one of four type tags
// (numeric, string, timestamp, bool), rows map column names to tagged
// values, and a missing column reads as the null value. File format
// concerns stay in the reader package; the engine only ever sees this
// interface.
//
// Example usage:
//
//	schema := table.NewSchema(
//	    table.Column{Name: "total_amount", Kind: table.Numeric},
//	    table.Column{Name: "zone", Kind: table.String},
//	)
//	tbl := table.NewMemTable(schema)
//	tbl.Append(table.Row{
//	    "total_amount": table.FloatValue(12.5),
//	    "zone":         table.StringValue("A"),
//	})
package table

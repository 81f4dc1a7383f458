// Package reader loads datasets into the engine's table model.
//
// Parquet files are read with the parquet-go library: physical and logical
// column types map onto the schema's four type tags (numeric, string,
// timestamp, bool), and rows become tagged values. A glob pattern reads
// every matching file into one table. CSV files are supported for the
// conversion path, with column types sniffed from the data.
//
// Example usage:
//
//	tbl, err := reader.ReadTable("trips.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report, err := engine.Run(tbl, spec)
package reader

// Package output renders query reports for humans and for persistence.
//
// Console, JSON and CSV formatters implement the Formatter interface; the
// parquet writer persists the reduced result set (per-group rows, or the
// single global stats row) as a columnar file.
//
// Example usage:
//
//	f := output.NewTableFormatter(os.Stdout)
//	if err := f.Format(report); err != nil {
//	    log.Fatal(err)
//	}
package output

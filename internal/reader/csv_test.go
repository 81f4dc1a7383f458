package reader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vegasq/tripstat/internal/table"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trips.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test CSV: %v", err)
	}
	return path
}

func TestReadCSV_SniffedKinds(t *testing.T) {
	path := writeCSV(t, "VendorID,tpep_pickup_datetime,trip_distance,zone,store_and_fwd_flag\n"+
		"1,2016-01-05 08:30:00,1.5,A,false\n"+
		"2,2016-01-20 18:00:00,4.2,B,true\n")

	tbl, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	tests := []struct {
		column string
		want   table.Kind
	}{
		{"VendorID", table.Numeric},
		{"tpep_pickup_datetime", table.Timestamp},
		{"trip_distance", table.Numeric},
		{"zone", table.String},
		{"store_and_fwd_flag", table.Bool},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			col, ok := tbl.Schema().Lookup(tt.column)
			if !ok {
				t.Fatalf("column %q missing from schema", tt.column)
			}
			if col.Kind != tt.want {
				t.Errorf("kind = %s, want %s", col.Kind, tt.want)
			}
		})
	}
}

func TestReadCSV_Values(t *testing.T) {
	path := writeCSV(t, "VendorID,tpep_pickup_datetime,trip_distance\n"+
		"1,2016-01-05 08:30:00,1.5\n")

	tbl, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	it := tbl.Rows()
	row, ok := it.Next()
	if !ok {
		t.Fatal("no rows read")
	}

	if got := row.Value("VendorID").Go(); got != int64(1) {
		t.Errorf("VendorID = %v (%T), want int64 1", got, got)
	}
	if got, _ := row.Value("trip_distance").AsFloat(); got != 1.5 {
		t.Errorf("trip_distance = %v, want 1.5", got)
	}
	pickup, _ := row.Value("tpep_pickup_datetime").AsTime()
	want := time.Date(2016, 1, 5, 8, 30, 0, 0, time.UTC)
	if !pickup.Equal(want) {
		t.Errorf("tpep_pickup_datetime = %v, want %v", pickup, want)
	}
}

func TestReadCSV_EmptyCellsReadNull(t *testing.T) {
	path := writeCSV(t, "amt,zone\n10,A\n,B\n")

	tbl, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}

	it := tbl.Rows()
	_, _ = it.Next()
	second, _ := it.Next()
	if !second.Value("amt").IsNull() {
		t.Error("empty cell should read as null")
	}
	if got, _ := second.Value("zone").AsString(); got != "B" {
		t.Errorf("zone = %q, want B", got)
	}
}

func TestReadCSV_MixedIntFloatColumn(t *testing.T) {
	// The first cell sniffs as numeric via int; later float cells must
	// still parse into the same column.
	path := writeCSV(t, "amt\n10\n2.5\n")

	tbl, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}

	it := tbl.Rows()
	first, _ := it.Next()
	second, _ := it.Next()
	if got := first.Value("amt").Go(); got != int64(10) {
		t.Errorf("first amt = %v (%T), want int64 10", got, got)
	}
	if got := second.Value("amt").Go(); got != 2.5 {
		t.Errorf("second amt = %v (%T), want 2.5", got, got)
	}
}

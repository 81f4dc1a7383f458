package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tripstat/internal/table"
)

// Reader reads one parquet file into the table model.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader opens and validates a parquet file.
//
// Example:
//
//	r, err := reader.NewReader("trips.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{file: file, pqFile: pqFile}, nil
}

// Schema maps the parquet schema onto the table schema. Nested groups are
// skipped; trip datasets are flat.
func (r *Reader) Schema() (*table.Schema, error) {
	return tableSchema(r.pqFile.Schema())
}

// ReadAll reads every row into memory as a typed table. The whole file is
// materialized, so this is not suitable for files larger than memory.
func (r *Reader) ReadAll() (*table.MemTable, error) {
	schema, err := r.Schema()
	if err != nil {
		return nil, err
	}
	convert := columnConverters(r.pqFile.Schema())

	tbl := table.NewMemTable(schema)
	rows := parquet.NewReader(r.pqFile)
	defer func() { _ = rows.Close() }()

	for {
		raw := make(map[string]interface{})
		err := rows.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(raw))
		for name, v := range raw {
			conv, ok := convert[name]
			if !ok || v == nil {
				continue
			}
			row[name] = conv(v)
		}
		tbl.Append(row)
	}

	return tbl, nil
}

// Close closes the underlying file. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadTable reads a single parquet file, or every file matching a glob
// pattern, into one table. With a pattern, all files must agree on the
// types of the columns they share.
func ReadTable(pattern string) (*table.MemTable, error) {
	if !strings.ContainsAny(pattern, "*?[]{}") {
		return readOne(pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}

	// Guard against runaway patterns exhausting file handles.
	const maxFiles = 1000
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var combined *table.MemTable
	for _, path := range matches {
		tbl, err := readOne(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if combined == nil {
			combined = tbl
			continue
		}
		if err := appendTable(combined, tbl, path); err != nil {
			return nil, err
		}
	}
	return combined, nil
}

func readOne(path string) (*table.MemTable, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return r.ReadAll()
}

// appendTable folds src into dst, checking that shared columns carry the
// same type tag across files.
func appendTable(dst, src *table.MemTable, path string) error {
	for _, col := range src.Schema().Columns() {
		existing, ok := dst.Schema().Lookup(col.Name)
		if ok && existing.Kind != col.Kind {
			return fmt.Errorf("%s: column %q is %s, expected %s", path, col.Name, col.Kind, existing.Kind)
		}
	}

	it := src.Rows()
	for {
		row, ok := it.Next()
		if !ok {
			return nil
		}
		dst.Append(row)
	}
}

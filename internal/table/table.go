package table

// Row maps column names to tagged values. A missing key reads as null.
type Row map[string]Value

// Value returns the cell for the named column, or the null value when the
// row does not carry it.
func (r Row) Value(name string) Value {
	return r[name]
}

// Iterator walks rows in the table's stable order.
type Iterator interface {
	// Next returns the next row, or false when the iteration is done.
	Next() (Row, bool)
}

// Table is an immutable, schema-typed row source. Implementations must be
// safe for concurrent readers and must iterate in a stable order.
type Table interface {
	Schema() *Schema
	Rows() Iterator
}

// MemTable is the in-memory Table implementation. Readers produce it from
// files; tests construct it directly.
type MemTable struct {
	schema *Schema
	rows   []Row
}

// NewMemTable creates an empty table with the given schema.
func NewMemTable(schema *Schema) *MemTable {
	return &MemTable{schema: schema}
}

// Schema returns the table schema.
func (t *MemTable) Schema() *Schema {
	return t.schema
}

// Append adds a row. Append is for table construction only; a table handed
// to the engine must not be mutated afterwards.
func (t *MemTable) Append(row Row) {
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *MemTable) Len() int {
	return len(t.rows)
}

// Rows returns an iterator over the rows in insertion order.
func (t *MemTable) Rows() Iterator {
	return &sliceIterator{rows: t.rows}
}

type sliceIterator struct {
	rows []Row
	pos  int
}

func (it *sliceIterator) Next() (Row, bool) {
	if it.pos >= len(it.rows) {
		return nil, false
	}
	row := it.rows[it.pos]
	it.pos++
	return row, true
}

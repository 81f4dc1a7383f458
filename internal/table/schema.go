package table

// Kind is a schema-level type tag for a column.
type Kind int

const (
	Numeric Kind = iota
	String
	Timestamp
	Bool
)

// String returns the lower-case tag name.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case String:
		return "string"
	case Timestamp:
		return "timestamp"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Column describes one column of a table: its name and type tag.
type Column struct {
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// Schema is the ordered set of columns of a table, fixed for the table's
// lifetime. Lookup by name is constant time.
type Schema struct {
	columns []Column
	index   map[string]int
}

// NewSchema builds a schema from columns in declaration order.
func NewSchema(columns ...Column) *Schema {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c.Name] = i
	}
	return &Schema{columns: columns, index: index}
}

// Columns returns the columns in declaration order. Callers must not
// mutate the returned slice.
func (s *Schema) Columns() []Column {
	return s.columns
}

// Lookup returns the column with the given name.
func (s *Schema) Lookup(name string) (Column, bool) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, false
	}
	return s.columns[i], true
}

// Has reports whether a column with the given name exists.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

package engine

import (
	"fmt"
	"time"

	"github.com/vegasq/tripstat/internal/table"
)

// Predicate is a pure boolean test over one row. Predicates are stateless
// and re-evaluable.
type Predicate func(table.Row) bool

// timeLayouts are the accepted formats for time window bounds, tried in
// order.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	time.RFC3339,
}

// BuildPredicate translates the spec's filter fields into a single
// AND-composed predicate. With no filter fields set it returns a predicate
// that accepts every row.
//
// A numeric bound on a non-numeric attribute fails with TypeMismatchError.
// An unparseable time bound fails with FilterValueError even when the time
// column is absent, since a malformed bound is a caller mistake rather
// than a property of the dataset; a parseable bound on an absent time
// column is silently dropped.
func BuildPredicate(spec QuerySpec, schema *table.Schema) (Predicate, error) {
	var atoms []Predicate

	if spec.MinValue != nil || spec.MaxValue != nil {
		col, ok := schema.Lookup(spec.Attribute)
		if ok && col.Kind != table.Numeric {
			return nil, &TypeMismatchError{Column: col.Name, Kind: col.Kind.String()}
		}
		attr := spec.Attribute
		if min := spec.MinValue; min != nil {
			atoms = append(atoms, func(row table.Row) bool {
				f, ok := row.Value(attr).AsFloat()
				return ok && f >= *min
			})
		}
		if max := spec.MaxValue; max != nil {
			atoms = append(atoms, func(row table.Row) bool {
				f, ok := row.Value(attr).AsFloat()
				return ok && f <= *max
			})
		}
	}

	timeAtoms, err := buildTimeWindow(spec, schema)
	if err != nil {
		return nil, err
	}
	atoms = append(atoms, timeAtoms...)

	if len(atoms) == 0 {
		return func(table.Row) bool { return true }, nil
	}
	return andPredicate(atoms), nil
}

func buildTimeWindow(spec QuerySpec, schema *table.Schema) ([]Predicate, error) {
	var start, end time.Time
	if spec.Start != "" {
		t, err := parseTimeBound(spec.Start)
		if err != nil {
			return nil, &FilterValueError{Field: "start", Value: spec.Start, Err: err}
		}
		start = t
	}
	if spec.End != "" {
		t, err := parseTimeBound(spec.End)
		if err != nil {
			return nil, &FilterValueError{Field: "end", Value: spec.End, Err: err}
		}
		end = t
	}

	// The original dataset may predate the timestamp column; a window on a
	// column the schema does not carry is not an error.
	if spec.TimeColumn == "" || !schema.Has(spec.TimeColumn) {
		return nil, nil
	}

	col := spec.TimeColumn
	var atoms []Predicate
	if spec.Start != "" {
		atoms = append(atoms, func(row table.Row) bool {
			t, ok := row.Value(col).AsTime()
			return ok && !t.Before(start)
		})
	}
	if spec.End != "" {
		atoms = append(atoms, func(row table.Row) bool {
			t, ok := row.Value(col).AsTime()
			return ok && !t.After(end)
		})
	}
	return atoms, nil
}

// parseTimeBound tries each accepted layout in order.
func parseTimeBound(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}

func andPredicate(atoms []Predicate) Predicate {
	return func(row table.Row) bool {
		for _, atom := range atoms {
			if !atom(row) {
				return false
			}
		}
		return true
	}
}

package engine

import (
	"github.com/vegasq/tripstat/internal/table"
)

// Run validates the spec against the table schema, then drives the
// predicate builder, filter stage and aggregator, assembling the Report.
//
// Validation fails fast, before any row is scanned. A query matching zero
// rows is a valid empty result, not an error. Running the same table and
// spec twice yields identical reports; the table is never mutated.
func Run(tbl table.Table, spec QuerySpec) (*Report, error) {
	schema := tbl.Schema()

	if err := validate(spec, schema); err != nil {
		return nil, err
	}

	pred, err := BuildPredicate(spec, schema)
	if err != nil {
		return nil, err
	}

	groupBy := ""
	if spec.Mode == ModeGroup {
		groupBy = spec.GroupBy
	}

	agg := Aggregate(Apply(tbl, pred), spec.Attribute, groupBy)

	report := &Report{
		Mode:        spec.Mode,
		Attribute:   spec.Attribute,
		MatchedRows: agg.MatchedRows,
		Stats:       agg.Global,
	}
	if spec.Mode == ModeGroup {
		report.GroupBy = spec.GroupBy
		report.Groups = agg.Groups
	}
	return report, nil
}

// validate checks the schema-level invariants the engine alone is
// responsible for: the attribute exists and is numeric, and group mode
// names an existing group column.
func validate(spec QuerySpec, schema *table.Schema) error {
	col, ok := schema.Lookup(spec.Attribute)
	if !ok {
		return &SchemaError{Column: spec.Attribute, Reason: "not found"}
	}
	if col.Kind != table.Numeric {
		return &SchemaError{Column: spec.Attribute, Reason: "is not numeric"}
	}

	if spec.Mode == ModeGroup {
		if spec.GroupBy == "" {
			return &SchemaError{Column: "group_by", Reason: "is required in group mode"}
		}
		if !schema.Has(spec.GroupBy) {
			return &SchemaError{Column: spec.GroupBy, Reason: "not found"}
		}
	}
	return nil
}

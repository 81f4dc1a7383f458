package engine

import (
	"github.com/vegasq/tripstat/internal/table"
)

// RowView is a lazy filtered view over a table. Rows are evaluated against
// the predicate during iteration, in the table's original order, without
// materializing a copy; the source table may be large.
type RowView struct {
	source table.Table
	pred   Predicate
}

// Apply produces a view containing only rows for which the predicate is
// true. The underlying table is never mutated.
func Apply(src table.Table, pred Predicate) *RowView {
	return &RowView{source: src, pred: pred}
}

// Rows returns an iterator over the matching rows, preserving source
// order. Each call starts a fresh pass.
func (v *RowView) Rows() table.Iterator {
	return &filterIterator{inner: v.source.Rows(), pred: v.pred}
}

type filterIterator struct {
	inner table.Iterator
	pred  Predicate
}

func (it *filterIterator) Next() (table.Row, bool) {
	for {
		row, ok := it.inner.Next()
		if !ok {
			return nil, false
		}
		if it.pred(row) {
			return row, true
		}
	}
}

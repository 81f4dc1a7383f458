package engine

import (
	"github.com/vegasq/tripstat/internal/table"
)

// Mode selects the query operation.
type Mode string

const (
	// ModeFilter summarizes the attribute over all filtered rows.
	ModeFilter Mode = "filter"
	// ModeGroup breaks the summary out by a grouping column.
	ModeGroup Mode = "group"
)

// QuerySpec describes one query. The zero value of each optional field
// means "not set": nil bounds, empty time strings, empty group column.
type QuerySpec struct {
	Mode      Mode
	Attribute string

	// Inclusive numeric bounds on Attribute.
	MinValue *float64
	MaxValue *float64

	// Inclusive window on TimeColumn. The window is silently skipped when
	// TimeColumn is absent from the schema; the dataset may not carry it.
	TimeColumn string
	Start      string
	End        string

	// GroupBy is required in group mode and ignored in filter mode.
	GroupBy string
}

// Stats summarizes one partition of attribute values. Min, Max, Mean and
// StdDev are null/nil when no value contributed; StdDev additionally needs
// at least two values.
type Stats struct {
	Count  int64       `json:"count"`
	Min    table.Value `json:"min"`
	Max    table.Value `json:"max"`
	Mean   *float64    `json:"mean"`
	StdDev *float64    `json:"stddev"`
}

// GroupStats pairs a group key with its partition statistics.
type GroupStats struct {
	Key   table.Value `json:"key"`
	Stats Stats       `json:"stats"`
}

// Report is the complete, immutable result of one query. Groups is nil in
// filter mode and ordered ascending by key in group mode. MatchedRows
// counts every row that passed the filters, including rows whose attribute
// value is null and therefore contributed to no statistic.
type Report struct {
	Mode        Mode         `json:"mode"`
	Attribute   string       `json:"attribute"`
	GroupBy     string       `json:"group_by,omitempty"`
	MatchedRows int64        `json:"matched_rows"`
	Stats       Stats        `json:"stats"`
	Groups      []GroupStats `json:"groups,omitempty"`
}

package engine

import (
	"math"
	"testing"

	"github.com/vegasq/tripstat/internal/table"
)

func tripTable() *table.MemTable {
	schema := table.NewSchema(
		table.Column{Name: "amt", Kind: table.Numeric},
		table.Column{Name: "zone", Kind: table.String},
	)
	tbl := table.NewMemTable(schema)
	tbl.Append(table.Row{"amt": table.IntValue(10), "zone": table.StringValue("A")})
	tbl.Append(table.Row{"amt": table.IntValue(20), "zone": table.StringValue("A")})
	tbl.Append(table.Row{"amt": table.IntValue(5), "zone": table.StringValue("B")})
	return tbl
}

func alwaysTrue(table.Row) bool { return true }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestAggregate_Global(t *testing.T) {
	agg := Aggregate(Apply(tripTable(), alwaysTrue), "amt", "")

	if agg.MatchedRows != 3 {
		t.Errorf("MatchedRows = %d, want 3", agg.MatchedRows)
	}
	s := agg.Global
	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}
	if got := s.Min.Go(); got != int64(5) {
		t.Errorf("Min = %v (%T), want int64 5", got, got)
	}
	if got := s.Max.Go(); got != int64(20) {
		t.Errorf("Max = %v (%T), want int64 20", got, got)
	}
	if s.Mean == nil || !approxEqual(*s.Mean, 35.0/3.0) {
		t.Errorf("Mean = %v, want 11.666...", s.Mean)
	}
	if s.StdDev == nil || !approxEqual(*s.StdDev, 7.637626) {
		t.Errorf("StdDev = %v, want 7.637626", s.StdDev)
	}
	if agg.Groups != nil {
		t.Errorf("Groups = %v, want nil without group_by", agg.Groups)
	}
}

func TestAggregate_Groups(t *testing.T) {
	agg := Aggregate(Apply(tripTable(), alwaysTrue), "amt", "zone")

	if len(agg.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(agg.Groups))
	}

	a := agg.Groups[0]
	if got, _ := a.Key.AsString(); got != "A" {
		t.Errorf("groups[0].Key = %v, want A", a.Key)
	}
	if a.Stats.Count != 2 {
		t.Errorf("A count = %d, want 2", a.Stats.Count)
	}
	if a.Stats.Mean == nil || !approxEqual(*a.Stats.Mean, 15) {
		t.Errorf("A mean = %v, want 15", a.Stats.Mean)
	}
	if a.Stats.StdDev == nil || !approxEqual(*a.Stats.StdDev, 7.071068) {
		t.Errorf("A stddev = %v, want 7.071068", a.Stats.StdDev)
	}

	b := agg.Groups[1]
	if got, _ := b.Key.AsString(); got != "B" {
		t.Errorf("groups[1].Key = %v, want B", b.Key)
	}
	if b.Stats.Count != 1 {
		t.Errorf("B count = %d, want 1", b.Stats.Count)
	}
	if got := b.Stats.Min.Go(); got != int64(5) {
		t.Errorf("B min = %v, want 5", got)
	}
	if got := b.Stats.Max.Go(); got != int64(5) {
		t.Errorf("B max = %v, want 5", got)
	}
	if b.Stats.Mean == nil || !approxEqual(*b.Stats.Mean, 5) {
		t.Errorf("B mean = %v, want 5", b.Stats.Mean)
	}
	// Sample stddev is undefined for a single value.
	if b.Stats.StdDev != nil {
		t.Errorf("B stddev = %v, want nil", *b.Stats.StdDev)
	}
}

func TestAggregate_GroupKeyOrdering(t *testing.T) {
	schema := table.NewSchema(
		table.Column{Name: "fare", Kind: table.Numeric},
		table.Column{Name: "passengers", Kind: table.Numeric},
	)
	tbl := table.NewMemTable(schema)
	for _, p := range []int64{10, 2, 1, 10, 3} {
		tbl.Append(table.Row{"fare": table.FloatValue(1), "passengers": table.IntValue(p)})
	}

	agg := Aggregate(Apply(tbl, alwaysTrue), "fare", "passengers")

	want := []int64{1, 2, 3, 10}
	if len(agg.Groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(agg.Groups), len(want))
	}
	for i, g := range agg.Groups {
		// Numeric keys must sort numerically, not lexicographically
		// (lexicographic order would put 10 before 2).
		if got := g.Key.Go(); got != want[i] {
			t.Errorf("groups[%d].Key = %v, want %d", i, got, want[i])
		}
	}
}

func TestAggregate_MissingAttributeValues(t *testing.T) {
	schema := table.NewSchema(
		table.Column{Name: "amt", Kind: table.Numeric},
		table.Column{Name: "zone", Kind: table.String},
	)
	tbl := table.NewMemTable(schema)
	tbl.Append(table.Row{"amt": table.IntValue(10), "zone": table.StringValue("A")})
	tbl.Append(table.Row{"zone": table.StringValue("C")}) // amt missing

	agg := Aggregate(Apply(tbl, alwaysTrue), "amt", "zone")

	// The row with a missing attribute still matches and still creates its
	// group, but contributes to no statistic.
	if agg.MatchedRows != 2 {
		t.Errorf("MatchedRows = %d, want 2", agg.MatchedRows)
	}
	if agg.Global.Count != 1 {
		t.Errorf("global Count = %d, want 1", agg.Global.Count)
	}
	if len(agg.Groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(agg.Groups))
	}

	c := agg.Groups[1]
	if got, _ := c.Key.AsString(); got != "C" {
		t.Fatalf("groups[1].Key = %v, want C", c.Key)
	}
	if c.Stats.Count != 0 {
		t.Errorf("C count = %d, want 0", c.Stats.Count)
	}
	if !c.Stats.Min.IsNull() || !c.Stats.Max.IsNull() {
		t.Errorf("C min/max = %v/%v, want null", c.Stats.Min, c.Stats.Max)
	}
	if c.Stats.Mean != nil || c.Stats.StdDev != nil {
		t.Errorf("C mean/stddev should be nil for an empty partition")
	}
}

func TestAccumulator_Merge(t *testing.T) {
	values := []float64{1.5, 2, 8, 13, 21.25, 34, 55, 89}

	whole := &accumulator{}
	for _, v := range values {
		whole.add(table.FloatValue(v))
	}

	// Splitting the sequence and merging the halves must match the single
	// pass; the accumulators are associatively mergeable.
	for split := 0; split <= len(values); split++ {
		left, right := &accumulator{}, &accumulator{}
		for _, v := range values[:split] {
			left.add(table.FloatValue(v))
		}
		for _, v := range values[split:] {
			right.add(table.FloatValue(v))
		}
		left.merge(right)

		if left.count != whole.count {
			t.Errorf("split %d: count = %d, want %d", split, left.count, whole.count)
		}
		if !approxEqual(left.mean, whole.mean) {
			t.Errorf("split %d: mean = %v, want %v", split, left.mean, whole.mean)
		}
		if !approxEqual(left.m2, whole.m2) {
			t.Errorf("split %d: m2 = %v, want %v", split, left.m2, whole.m2)
		}
		if left.min.Compare(whole.min) != 0 || left.max.Compare(whole.max) != 0 {
			t.Errorf("split %d: min/max = %v/%v, want %v/%v", split, left.min, left.max, whole.min, whole.max)
		}
	}
}

func TestStats_MinLEMeanLEMax(t *testing.T) {
	acc := &accumulator{}
	for _, v := range []float64{3.2, -1, 99, 42, 0.001} {
		acc.add(table.FloatValue(v))
	}
	s := acc.stats()

	min, _ := s.Min.AsFloat()
	max, _ := s.Max.AsFloat()
	if !(min <= *s.Mean && *s.Mean <= max) {
		t.Errorf("want min <= mean <= max, got %v <= %v <= %v", min, *s.Mean, max)
	}
	if *s.StdDev < 0 {
		t.Errorf("stddev = %v, want >= 0", *s.StdDev)
	}
}

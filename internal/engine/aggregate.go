package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/vegasq/tripstat/internal/table"
)

// Aggregation is the aggregator's output: the per-row match count, the
// global partition, and, when grouping, the per-key partitions in
// ascending key order.
type Aggregation struct {
	MatchedRows int64
	Global      Stats
	Groups      []GroupStats
}

// accumulator holds the running statistics of one partition. Mean and
// variance use Welford's online update; min and max keep the attribute's
// native tagged value so integers stay integers. Accumulators combine
// pairwise with merge, so partitioning the row range across workers would
// not change results.
type accumulator struct {
	count int64
	min   table.Value
	max   table.Value
	mean  float64
	m2    float64
}

// add folds one attribute value into the partition. Null and non-numeric
// values are ignored: a row with a missing attribute still matches
// filters and still establishes its group, but contributes to no
// statistic.
func (a *accumulator) add(v table.Value) {
	f, ok := v.AsFloat()
	if !ok {
		return
	}

	if a.count == 0 || v.Compare(a.min) < 0 {
		a.min = v
	}
	if a.count == 0 || v.Compare(a.max) > 0 {
		a.max = v
	}

	a.count++
	delta := f - a.mean
	a.mean += delta / float64(a.count)
	a.m2 += delta * (f - a.mean)
}

// merge combines another partition into this one (Chan et al. parallel
// variance formula).
func (a *accumulator) merge(b *accumulator) {
	if b.count == 0 {
		return
	}
	if a.count == 0 {
		*a = *b
		return
	}

	if b.min.Compare(a.min) < 0 {
		a.min = b.min
	}
	if b.max.Compare(a.max) > 0 {
		a.max = b.max
	}

	n := a.count + b.count
	delta := b.mean - a.mean
	a.m2 += b.m2 + delta*delta*float64(a.count)*float64(b.count)/float64(n)
	a.mean += delta * float64(b.count) / float64(n)
	a.count = n
}

// stats finalizes the partition. Sample standard deviation divides by
// n-1 and is undefined below two values.
func (a *accumulator) stats() Stats {
	s := Stats{Count: a.count, Min: a.min, Max: a.max}
	if a.count == 0 {
		return s
	}

	mean := a.mean
	s.Mean = &mean

	if a.count >= 2 {
		m2 := a.m2
		if m2 < 0 {
			m2 = 0 // float cancellation
		}
		stddev := math.Sqrt(m2 / float64(a.count-1))
		s.StdDev = &stddev
	}
	return s
}

// Aggregate makes a single pass over the view, folding the named attribute
// into one global partition and, when groupBy is non-empty, one partition
// per distinct group key. Rows where the group column is null form their
// own null-key partition.
func Aggregate(view *RowView, attribute, groupBy string) Aggregation {
	var agg Aggregation
	global := &accumulator{}
	partitions := make(map[string]*partition)

	it := view.Rows()
	for {
		row, ok := it.Next()
		if !ok {
			break
		}
		agg.MatchedRows++

		value := row.Value(attribute)
		global.add(value)

		if groupBy == "" {
			continue
		}
		key := row.Value(groupBy)
		id := partitionID(key)
		p, ok := partitions[id]
		if !ok {
			p = &partition{key: key}
			partitions[id] = p
		}
		p.acc.add(value)
	}

	agg.Global = global.stats()

	if groupBy != "" {
		agg.Groups = sortedGroups(partitions)
	}
	return agg
}

type partition struct {
	key table.Value
	acc accumulator
}

// partitionID maps a group key to a collision-safe map key. %#v on the
// underlying Go value keeps distinct types distinct ("5" vs 5).
func partitionID(key table.Value) string {
	return fmt.Sprintf("%#v", key.Go())
}

// sortedGroups emits partitions ascending by key in the key's natural
// order: numeric, lexicographic, or chronological, with a null key first.
func sortedGroups(partitions map[string]*partition) []GroupStats {
	groups := make([]GroupStats, 0, len(partitions))
	for _, p := range partitions {
		groups = append(groups, GroupStats{Key: p.key, Stats: p.acc.stats()})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key.Compare(groups[j].Key) < 0
	})
	return groups
}

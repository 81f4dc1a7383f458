// Package engine implements the filter-and-aggregate query core.
//
// A query is described by a declarative QuerySpec: an operation mode
// (filter or group), a numeric attribute to summarize, optional inclusive
// bounds on that attribute, an optional inclusive time window, and a
// grouping column for group mode. Running a spec against a table is a
// pure, single-pass computation:
//
//	spec := engine.QuerySpec{
//	    Mode:      engine.ModeFilter,
//	    Attribute: "total_amount",
//	}
//	report, err := engine.Run(tbl, spec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Stats.Count)
//
// The pipeline is predicate construction, a lazy row view over the table,
// and a streaming aggregator that maintains count, min, max, and Welford
// mean/variance per partition. Sample standard deviation (divisor n-1) is
// reported, and is undefined below two values. All schema validation
// happens before any row is scanned, so a malformed spec never produces
// partial output.
package engine

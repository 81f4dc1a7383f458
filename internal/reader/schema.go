package reader

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/tripstat/internal/table"
)

// tableSchema maps parquet leaf fields onto table columns. Groups and
// repeated fields have no place in the flat trip model and are dropped.
func tableSchema(schema *parquet.Schema) (*table.Schema, error) {
	var columns []table.Column
	for _, field := range schema.Fields() {
		if len(field.Fields()) > 0 || field.Repeated() {
			continue
		}
		kind, err := kindOf(field)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", field.Name(), err)
		}
		columns = append(columns, table.Column{Name: field.Name(), Kind: kind})
	}
	return table.NewSchema(columns...), nil
}

// kindOf derives the type tag for a leaf field. The logical type wins over
// the physical type: TIMESTAMP stored as INT64 is still a timestamp.
func kindOf(field parquet.Field) (table.Kind, error) {
	if lt := field.Type().LogicalType(); lt != nil {
		switch {
		case lt.UTF8 != nil, lt.Enum != nil, lt.UUID != nil, lt.Json != nil:
			return table.String, nil
		case lt.Timestamp != nil, lt.Date != nil:
			return table.Timestamp, nil
		case lt.Integer != nil, lt.Decimal != nil:
			return table.Numeric, nil
		}
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return table.Bool, nil
	case parquet.Int32, parquet.Int64, parquet.Int96, parquet.Float, parquet.Double:
		return table.Numeric, nil
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return table.String, nil
	default:
		return table.Numeric, fmt.Errorf("unsupported parquet type %s", field.Type())
	}
}

// converter turns a raw value read from parquet into a tagged table value.
type converter func(interface{}) table.Value

// columnConverters builds one converter per leaf column, resolved once per
// file rather than per cell.
func columnConverters(schema *parquet.Schema) map[string]converter {
	converters := make(map[string]converter)
	for _, field := range schema.Fields() {
		if len(field.Fields()) > 0 || field.Repeated() {
			continue
		}
		kind, err := kindOf(field)
		if err != nil {
			continue
		}
		converters[field.Name()] = converterFor(kind, field)
	}
	return converters
}

func converterFor(kind table.Kind, field parquet.Field) converter {
	switch kind {
	case table.Timestamp:
		unit := timestampUnit(field)
		return func(v interface{}) table.Value {
			return convertTimestamp(v, unit)
		}
	case table.String:
		return convertString
	case table.Bool:
		return convertBool
	default:
		return convertNumeric
	}
}

func convertNumeric(v interface{}) table.Value {
	switch n := v.(type) {
	case int32:
		return table.IntValue(int64(n))
	case int64:
		return table.IntValue(n)
	case int:
		return table.IntValue(int64(n))
	case float32:
		return table.FloatValue(float64(n))
	case float64:
		return table.FloatValue(n)
	default:
		return table.Null()
	}
}

func convertString(v interface{}) table.Value {
	switch s := v.(type) {
	case string:
		return table.StringValue(s)
	case []byte:
		return table.StringValue(string(s))
	default:
		return table.Null()
	}
}

func convertBool(v interface{}) table.Value {
	if b, ok := v.(bool); ok {
		return table.BoolValue(b)
	}
	return table.Null()
}

// convertTimestamp handles the representations parquet-go hands back for
// timestamp columns: time.Time directly, or the raw integer in the
// column's declared unit. DATE columns arrive as days since epoch.
func convertTimestamp(v interface{}, unit time.Duration) table.Value {
	switch t := v.(type) {
	case time.Time:
		return table.TimeValue(t.UTC())
	case int64:
		return table.TimeValue(time.Unix(0, t*int64(unit)).UTC())
	case int32:
		return table.TimeValue(time.Unix(int64(t)*86400, 0).UTC())
	default:
		return table.Null()
	}
}

// timestampUnit reads the column's time unit, defaulting to milliseconds,
// which is what pandas-written trip data uses.
func timestampUnit(field parquet.Field) time.Duration {
	lt := field.Type().LogicalType()
	if lt == nil || lt.Timestamp == nil {
		return time.Millisecond
	}
	switch {
	case lt.Timestamp.Unit.Micros != nil:
		return time.Microsecond
	case lt.Timestamp.Unit.Nanos != nil:
		return time.Nanosecond
	default:
		return time.Millisecond
	}
}

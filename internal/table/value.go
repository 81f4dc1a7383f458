package table

import (
	"encoding/json"
	"fmt"
	"time"
)

// valueKind discriminates the payload held by a Value. It is finer-grained
// than the schema Kind: both int64 and float64 payloads belong to Numeric
// columns, so min/max can preserve the column's native representation.
type valueKind int

const (
	kindNull valueKind = iota
	kindInt
	kindFloat
	kindString
	kindTime
	kindBool
)

// Value is a tagged scalar read from a table cell. The zero Value is null.
type Value struct {
	kind valueKind
	i    int64
	f    float64
	s    string
	t    time.Time
	b    bool
}

// Null returns the null value, used for missing or empty cells.
func Null() Value {
	return Value{}
}

// IntValue returns a numeric value with an integer payload.
func IntValue(i int64) Value {
	return Value{kind: kindInt, i: i}
}

// FloatValue returns a numeric value with a float payload.
func FloatValue(f float64) Value {
	return Value{kind: kindFloat, f: f}
}

// StringValue returns a string value.
func StringValue(s string) Value {
	return Value{kind: kindString, s: s}
}

// TimeValue returns a timestamp value.
func TimeValue(t time.Time) Value {
	return Value{kind: kindTime, t: t}
}

// BoolValue returns a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: kindBool, b: b}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == kindNull
}

// AsFloat converts a numeric value to float64. It reports false for null
// and non-numeric values.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case kindInt:
		return float64(v.i), true
	case kindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// AsTime returns the timestamp payload. It reports false for non-timestamp
// values.
func (v Value) AsTime() (time.Time, bool) {
	if v.kind != kindTime {
		return time.Time{}, false
	}
	return v.t, true
}

// AsString returns the string payload. It reports false for non-string
// values.
func (v Value) AsString() (string, bool) {
	if v.kind != kindString {
		return "", false
	}
	return v.s, true
}

// Compare imposes a total order on values: null sorts before everything,
// numerics compare as float64 (so int and float payloads interleave),
// strings lexicographically, timestamps chronologically, and false before
// true. Values of different kinds order by kind, which keeps sorting
// deterministic for heterogeneous columns.
func (v Value) Compare(o Value) int {
	if v.IsNull() || o.IsNull() {
		switch {
		case v.IsNull() && o.IsNull():
			return 0
		case v.IsNull():
			return -1
		default:
			return 1
		}
	}

	if vf, ok := v.AsFloat(); ok {
		if of, ok := o.AsFloat(); ok {
			switch {
			case vf < of:
				return -1
			case vf > of:
				return 1
			default:
				return 0
			}
		}
	}

	if v.kind != o.kind {
		return int(v.kind) - int(o.kind)
	}

	switch v.kind {
	case kindString:
		switch {
		case v.s < o.s:
			return -1
		case v.s > o.s:
			return 1
		default:
			return 0
		}
	case kindTime:
		switch {
		case v.t.Before(o.t):
			return -1
		case v.t.After(o.t):
			return 1
		default:
			return 0
		}
	case kindBool:
		switch {
		case !v.b && o.b:
			return -1
		case v.b && !o.b:
			return 1
		default:
			return 0
		}
	}
	return 0
}

// Go returns the value as a plain Go scalar (nil for null). Timestamps come
// back as time.Time.
func (v Value) Go() interface{} {
	switch v.kind {
	case kindInt:
		return v.i
	case kindFloat:
		return v.f
	case kindString:
		return v.s
	case kindTime:
		return v.t
	case kindBool:
		return v.b
	default:
		return nil
	}
}

// String renders the value for display. Null renders as "NULL".
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return fmt.Sprintf("%d", v.i)
	case kindFloat:
		return fmt.Sprintf("%g", v.f)
	case kindString:
		return v.s
	case kindTime:
		return v.t.Format("2006-01-02 15:04:05")
	case kindBool:
		return fmt.Sprintf("%t", v.b)
	default:
		return "NULL"
	}
}

// MarshalJSON encodes the underlying scalar, or JSON null for the null
// value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Go())
}

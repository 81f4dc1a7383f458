package engine

import "fmt"

// SchemaError reports a referenced column that is absent from the schema
// or has the wrong type for its role.
type SchemaError struct {
	Column string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: column %q %s", e.Column, e.Reason)
}

// FilterValueError reports a filter bound that could not be interpreted,
// such as a time bound that fails to parse.
type FilterValueError struct {
	Field string
	Value string
	Err   error
}

func (e *FilterValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FilterValueError) Unwrap() error {
	return e.Err
}

// TypeMismatchError reports a numeric bound applied to a non-numeric
// column.
type TypeMismatchError struct {
	Column string
	Kind   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("cannot apply numeric bound to %s column %q", e.Kind, e.Column)
}

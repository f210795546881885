// Package domain holds the error type shared by the core value packages.
package domain

import "fmt"

// RangeError reports an input value outside the domain of the field it was
// meant for. It is the only error kind the core value types produce, and it
// always surfaces at construction time; no operation clamps or repairs an
// out-of-range value.
type RangeError struct {
	Field  string
	Value  any
	Min    any
	Max    any
	Detail string
}

func (e *RangeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Detail)
	}
	return fmt.Sprintf("%s %v exceeds the valid range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// NewRangeError builds a RangeError for a value that left [min, max].
func NewRangeError(field string, value, min, max any) error {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}

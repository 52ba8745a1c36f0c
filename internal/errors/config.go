// ABOUTME: Error value describing a configuration value that was clamped
// ABOUTME: Logged for diagnostics, never returned to widget callers

package errors

import "fmt"

type ClampedValueError struct {
	Field string
	Given int
	Used  int
}

func NewClampedValue(field string, given, used int) *ClampedValueError {
	return &ClampedValueError{
		Field: field,
		Given: given,
		Used:  used,
	}
}

func (e *ClampedValueError) Error() string {
	return fmt.Sprintf("%s %d out of range, using %d", e.Field, e.Given, e.Used)
}

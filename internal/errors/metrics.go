// ABOUTME: Error values for text-metric lookups that cannot be answered yet
// ABOUTME: Recovered locally by the line counter, never surfaced to widget callers

package errors

import (
	stderrors "errors"
	"fmt"
)

// MetricsUnavailableError reports that no layout exists for the requested offset.
// Offset is -1 for caret lookups.
type MetricsUnavailableError struct {
	Offset int
	Reason string
}

func NewMetricsUnavailable(offset int, reason string) *MetricsUnavailableError {
	return &MetricsUnavailableError{
		Offset: offset,
		Reason: reason,
	}
}

func (e *MetricsUnavailableError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("caret metrics unavailable: %s", e.Reason)
	}
	return fmt.Sprintf("metrics unavailable for offset %d: %s", e.Offset, e.Reason)
}

// IsMetricsUnavailable reports whether err (or anything it wraps) is a MetricsUnavailableError.
func IsMetricsUnavailable(err error) bool {
	var target *MetricsUnavailableError
	return stderrors.As(err, &target)
}

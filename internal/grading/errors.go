package grading

import "fmt"

// ValidationError reports a numeric input outside the documented domain of a
// conversion formula. Out-of-range values are rejected, never clamped.
type ValidationError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Field, e.Min, e.Max, e.Value)
}

// UnknownGradeError reports a letter grade absent from every lookup table
// after the substring fallback match.
type UnknownGradeError struct {
	Grade string
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("unknown grade: %s", e.Grade)
}

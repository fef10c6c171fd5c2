package record

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a required data file or directory that does not
// exist. Wrapped with the path by the package that noticed.
var ErrNotFound = errors.New("not found")

// FormatError reports a line that does not parse into its expected
// shape: wrong field count or a field that is not numeric.
type FormatError struct {
	Line   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid line %q: %s", e.Line, e.Reason)
}

// ValidationError reports well-formed input values that violate a
// domain constraint: empty name, non-positive quantity or price,
// rating out of range.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

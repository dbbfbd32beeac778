package homework

import "fmt"

// Custom errors for response validation and status parsing
var ErrMalformedResponse = fmt.Errorf("malformed API response")
var ErrMissingField = fmt.Errorf("homework record is missing a required field")

// UnknownStatusError indicates a homework record carried a status outside the
// documented enumeration.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("undocumented homework status: %q", e.Status)
}

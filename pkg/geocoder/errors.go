package geocoder

import (
	"fmt"
)

// StatusNotFound is the status code of a query with no match.
const StatusNotFound = 404

// ErrNotFound is returned when a query has no match. Any *Error with
// StatusNotFound matches it under errors.Is.
var ErrNotFound = &Error{StatusCode: StatusNotFound, Message: "no result found"}

// Error is a geocoding failure with an HTTP-like status code
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("geocoder: status %d: %s", e.StatusCode, e.Message)
}

// Is matches errors with the same status code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.StatusCode == e.StatusCode
}

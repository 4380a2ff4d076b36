package errors

import "fmt"

// HTTPError is a transport-level error carrying an HTTP status code.
// Delivery layers map domain errors into these.
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// String implements fmt.Stringer for logging.
func (e *HTTPError) String() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

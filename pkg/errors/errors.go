package errors

import "fmt"

// HTTPError is a transport-level error carrying the status code the
// delivery layer should respond with.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError with a status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithDetails attaches structured details (e.g. per-field validation
// messages) to the error.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	return &HTTPError{StatusCode: e.StatusCode, Message: e.Message, Details: details}
}

// Package errors holds the HTTP-facing error type the delivery layer maps domain errors to.
package errors

import (
	"errors"
	"fmt"
)

// HTTPError is an error carrying the HTTP status it should be reported with.
// Code is both the status and the envelope error code.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns an HTTPError for status code with a client-facing message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// AsHTTPError reports whether err is or wraps an HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}

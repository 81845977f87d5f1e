package http

import (
	"errors"
	"fmt"
)

// errorBodyLimit bounds how much of an upstream error body is kept in HTTPError
const errorBodyLimit = 512

var ErrResponseTooLarge = errors.New("response body too large")

// HTTPError is a non-2xx upstream response
type HTTPError struct {
	StatusCode int
	Message    string
}

func newHTTPError(status int, body []byte) *HTTPError {
	msg := string(body)
	if len(body) > errorBodyLimit {
		msg = string(body[:errorBodyLimit]) + "..."
	}
	return &HTTPError{StatusCode: status, Message: msg}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// NetworkError wraps connection level failures, including context deadlines
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

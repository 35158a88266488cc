package providers

import (
	"errors"
	"fmt"
)

// NetworkError captures requests that could not complete: connection
// failures, timeouts, and non-success HTTP status codes.
type NetworkError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// ParseError captures responses that are not in the expected structured
// format or are missing required fields.
type ParseError struct {
	Provider string
	Field    string
	Message  string
	Err      error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response shape"
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Provider, msg, e.Field)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

package opnsense

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed is the root of every failed backend call.
	ErrRequestFailed = errors.New("opnsense request failed")
	// ErrUnexpectedResponse reports a body matching none of the known response shapes.
	ErrUnexpectedResponse = errors.New("unexpected response format")
)

// RequestError describes a failed call to the API.
type RequestError struct {
	// Op is the API path that was called (e.g., "settings/addHostOverride/").
	Op string
	// StatusCode is the HTTP status, zero when no response was received.
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s: status %d: %v", ErrRequestFailed, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrRequestFailed, e.Op, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause to errors.Is.
func (e *RequestError) Unwrap() []error {
	return []error{ErrRequestFailed, e.Err}
}

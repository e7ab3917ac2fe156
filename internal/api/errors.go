package api

import (
	"errors"
	"fmt"
)

// TransportError means the request/response cycle did not complete: the host
// was unreachable, the request could not be built, or the body could not be
// read or parsed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectionError means the server answered with a non-success status
type RejectionError struct {
	Op         string
	StatusCode int
	Message    string // server-provided message, may be empty
}

func (e *RejectionError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: server returned status %d: %s", e.Op, e.StatusCode, e.Message)
}

// IsTransport reports whether err is or wraps a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsRejection reports whether err is or wraps a RejectionError
func IsRejection(err error) bool {
	var re *RejectionError
	return errors.As(err, &re)
}

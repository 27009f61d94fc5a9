package client

import (
	"errors"
	"fmt"
)

// Transport error kinds. Every error returned by Client wraps exactly one.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrFailed covers network failures, non-2xx responses and malformed bodies.
	ErrFailed = errors.New("request failed")

	// ErrCanceled indicates the caller canceled the request, typically because
	// a newer submission replaced it.
	ErrCanceled = errors.New("request canceled")
)

// TransportError carries the advisory detail of a failed request.
// Detail is for logs only and must not be shown to the user.
type TransportError struct {
	Kind   error
	Op     string
	Status int
	Detail string
}

func (e *TransportError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap returns the error kind.
func (e *TransportError) Unwrap() error {
	return e.Kind
}

// Package errors classifies failed calls for the client SDK.
// Nothing is retried; the category only shapes how a failure is logged.
package errors

import (
	"errors"
	"fmt"
)

// Envelope error strings used when the backend did not supply one.
const (
	// ConnectionFailed is the envelope error for every transport-level failure.
	ConnectionFailed = "failed to connect to server"
	// UnknownError is used when a non-2xx body carries no error field.
	UnknownError = "unknown error"
	// NetworkError is the fallback message when a transport failure has no text.
	NetworkError = "network error"
)

// ErrorCategory tells whether a failure is transient.
type ErrorCategory int

const (
	// Recoverable failures may succeed if the user submits again.
	// Examples: 500 Internal Server Error, network timeouts, connection failures.
	Recoverable ErrorCategory = iota

	// Irrecoverable failures will fail again with the same input.
	// Examples: 401 Unauthorized, 404 Not Found, 409 Conflict.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with categorization metadata.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // HTTP status code (0 for transport errors)
	Body       string // Response body for debugging
	Underlying error  // The original error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// CategoryOf returns the category of a classified error anywhere in err's chain.
func CategoryOf(err error) (ErrorCategory, bool) {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Category, true
	}
	return 0, false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.StatusCode == 0
	}
	return false
}

// Package errors classifies failures so the async executor can decide
// between retrying with backoff and failing fast.
package errors

import "fmt"

// Category determines how a failure is handled by retry logic.
type Category int

const (
	// Recoverable failures are retried with exponential backoff:
	// 5xx responses, network timeouts, connection resets.
	Recoverable Category = iota

	// Irrecoverable failures stop immediately: 400, 401, 403, 404.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps a failure with the metadata retry policies need.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // zero for non-HTTP failures
	Message    string // server-supplied display message, if any
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}

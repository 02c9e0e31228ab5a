package errors

import "fmt"

// ClassifyHTTPError categorizes a non-success HTTP response.
// 4xx statuses other than 408/429 are irrecoverable; 5xx and anything
// unexpected is retried.
func ClassifyHTTPError(statusCode int, message string, underlying error) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryForStatus(statusCode),
		StatusCode: statusCode,
		Message:    message,
		Underlying: underlying,
	}
}

func categoryForStatus(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// NewHTTPError builds a classified error for a failed operation.
func NewHTTPError(statusCode int, message, operation string) *ClassifiedError {
	return ClassifyHTTPError(statusCode, message, fmt.Errorf("%s failed: HTTP %d", operation, statusCode))
}

// NewNetworkError wraps a transport-level failure. Network failures may be
// transient, so they are always recoverable.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}

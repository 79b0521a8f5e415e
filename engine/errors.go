package engine

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
)

// ErrorCode classifies engine errors.
type ErrorCode int

const (
	// ErrCodeTimeout indicates the transport reported a timeout-classified
	// failure (socket timeout).
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeTransport indicates any other transport-level failure
	// (DNS, connection, TLS, protocol). Carries the native diagnostic.
	ErrCodeTransport
	// ErrCodeUnsupportedContent indicates a request content variant the
	// encoder does not recognize. Raised before any network activity.
	ErrCodeUnsupportedContent
	// ErrCodeBackpressure indicates the byte stream bridge could not accept
	// a chunk. Internal invariant breach; fatal to the call.
	ErrCodeBackpressure
	// ErrCodeCancelled indicates the call's context was cancelled.
	ErrCodeCancelled
	// ErrCodeInvalidRequest indicates the request could not be constructed
	// or encoded (malformed URL, body producer failure). Raised before any
	// network activity.
	ErrCodeInvalidRequest
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeTransport:
		return "transport"
	case ErrCodeUnsupportedContent:
		return "unsupported_content"
	case ErrCodeBackpressure:
		return "backpressure"
	case ErrCodeCancelled:
		return "cancelled"
	case ErrCodeInvalidRequest:
		return "invalid_request"
	default:
		return "unknown"
	}
}

// Error is a structured engine error with classification.
type Error struct {
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Retryable indicates whether the call can be retried by a higher
	// layer. The engine itself never retries.
	Retryable bool
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("engine: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError creates a socket-timeout error.
func NewTimeoutError(err error) *Error {
	return &Error{
		Code:      ErrCodeTimeout,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewTransportError wraps a native transport failure.
func NewTransportError(err error) *Error {
	return &Error{
		Code:      ErrCodeTransport,
		Message:   err.Error(),
		Retryable: true,
		Err:       err,
	}
}

// NewUnsupportedContentError creates an unsupported-content error for the
// given content variant description.
func NewUnsupportedContentError(variant string) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedContent,
		Message: fmt.Sprintf("unsupported content variant %s", variant),
	}
}

// NewBackpressureError creates a backpressure-violation error.
func NewBackpressureError() *Error {
	return &Error{
		Code:    ErrCodeBackpressure,
		Message: "byte stream bridge rejected a chunk",
	}
}

// NewCancelledError creates a cancellation error.
func NewCancelledError(err error) *Error {
	return &Error{
		Code:    ErrCodeCancelled,
		Message: "call cancelled",
		Err:     err,
	}
}

// NewInvalidRequestError creates a request-construction error.
func NewInvalidRequestError(err error) *Error {
	return &Error{
		Code:    ErrCodeInvalidRequest,
		Message: err.Error(),
		Err:     err,
	}
}

// classifyTransport maps a native transport failure to a typed error:
// timeout-classified errors become ErrCodeTimeout, everything else
// ErrCodeTransport.
func classifyTransport(err error) *Error {
	if isTimeout(err) {
		return NewTimeoutError(err)
	}
	return NewTransportError(err)
}

// isTimeout reports whether err is timeout-classified.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsTimeout checks if an error is a socket-timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTimeout
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsUnsupportedContent checks if an error is an unsupported-content error.
func IsUnsupportedContent(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnsupportedContent
}

// IsBackpressure checks if an error is a backpressure violation.
func IsBackpressure(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeBackpressure
}

// IsCancelled checks if an error is a cancellation.
func IsCancelled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeCancelled
}

// IsInvalidRequest checks if an error is a request-construction error.
func IsInvalidRequest(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeInvalidRequest
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

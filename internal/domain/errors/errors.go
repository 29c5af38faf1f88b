package errors

import (
	"fmt"
	"net/http"

	"medtrack/internal/errors"
)

// StatusClientClosedRequest is reported for work abandoned by its caller
const StatusClientClosedRequest = 499

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError with the same error code, so copies made by
// WithDetails still match the catalogue entry
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"No tracking session is open for this order",
		"",
	)

	ErrSessionForbidden = NewBaseError(
		http.StatusForbidden,
		"SESSION_FORBIDDEN",
		"This tracking session belongs to another client",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Session expired, sign in again",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinates must be finite latitude/longitude values",
		"",
	)

	ErrSessionClosed = NewBaseError(
		http.StatusConflict,
		"SESSION_CLOSED",
		"Tracking session already closed",
		"",
	)

	ErrBackendOffline = NewBaseError(
		http.StatusServiceUnavailable,
		"OFFLINE",
		"Poor connection, check your connection and try again",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UpstreamError is a non-2xx response from the commerce backend
type UpstreamError struct {
	Status int
	Msg    string
}

// NewUpstreamError builds an UpstreamError, defaulting the message like the backend client does
func NewUpstreamError(status int, message string) *UpstreamError {
	if message == "" {
		message = fmt.Sprintf("Request failed (%d)", status)
	}

	return &UpstreamError{Status: status, Msg: message}
}

func (e *UpstreamError) Error() string {
	return e.Msg
}

func (e *UpstreamError) HTTPCode() int {
	if e.Status == http.StatusNotFound || e.Status == http.StatusUnauthorized {
		return e.Status
	}

	return http.StatusBadGateway
}

func (e *UpstreamError) ErrorCode() string {
	return "UPSTREAM_ERROR"
}

func (e *UpstreamError) Message() string {
	return e.Msg
}

func (e *UpstreamError) Details() string {
	return fmt.Sprintf("backend status %d", e.Status)
}

// RoutingError reports a failed route fetch. Aborted marks caller
// cancellation, which consumers discard silently.
type RoutingError struct {
	Status  int
	Reason  string
	Aborted bool
	Timeout bool
	cause   error
}

// NewRoutingError creates a routing failure with an optional HTTP status and cause
func NewRoutingError(status int, reason string, cause error) *RoutingError {
	return &RoutingError{Status: status, Reason: reason, cause: cause}
}

// NewRoutingAborted creates the abort-kind routing error
func NewRoutingAborted(cause error) *RoutingError {
	return &RoutingError{Aborted: true, Reason: "aborted", cause: cause}
}

// NewRoutingTimeout creates a routing failure caused by the fetch timeout
func NewRoutingTimeout(cause error) *RoutingError {
	return &RoutingError{Timeout: true, Reason: "timeout", cause: cause}
}

func (e *RoutingError) Error() string {
	switch {
	case e.Aborted:
		return "Routing aborted"
	case e.Status > 0:
		return fmt.Sprintf("Routing failed (%d)", e.Status)
	case e.Reason != "":
		return fmt.Sprintf("Routing failed (%s)", e.Reason)
	default:
		return "Routing failed"
	}
}

func (e *RoutingError) Unwrap() error {
	return e.cause
}

func (e *RoutingError) HTTPCode() int {
	switch {
	case e.Aborted:
		return StatusClientClosedRequest
	case e.Timeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func (e *RoutingError) ErrorCode() string {
	switch {
	case e.Aborted:
		return "ROUTING_ABORTED"
	case e.Timeout:
		return "ROUTING_TIMEOUT"
	default:
		return "ROUTING_FAILED"
	}
}

func (e *RoutingError) Message() string {
	return e.Error()
}

func (e *RoutingError) Details() string {
	if e.cause == nil {
		return ""
	}

	return e.cause.Error()
}

// IsAborted reports whether err is an abort-kind routing error
func IsAborted(err error) bool {
	var routingErr *RoutingError

	return errors.As(err, &routingErr) && routingErr.Aborted
}

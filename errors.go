package textsecure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// Standard TextSecure Error Types
//
// These errors follow Go 1.13+ error wrapping conventions and can be
// checked using errors.Is() and errors.As().
//
// - Use sentinel errors for common, expected error conditions
// - Use error types for errors that need additional context

// Sentinel errors
var (
	// ErrUnknownRoute indicates an operation name that has no route template.
	ErrUnknownRoute = errors.New("textsecure: unknown route")

	// ErrRouteArity indicates the number of arguments passed to Format does
	// not match the placeholders in the route template.
	ErrRouteArity = errors.New("textsecure: wrong number of route arguments")

	// ErrNetwork indicates the server could not be reached or the connection
	// broke before a response was read.
	ErrNetwork = errors.New("textsecure: network failure")

	// ErrAuthenticationFailed indicates the server rejected the account credentials.
	ErrAuthenticationFailed = errors.New("textsecure: authentication failed")

	// ErrMalformedRequest indicates the server refused the request as invalid.
	ErrMalformedRequest = errors.New("textsecure: malformed request")

	// ErrMalformedResponse indicates a server response could not be decoded.
	ErrMalformedResponse = errors.New("textsecure: malformed server response")

	// ErrInvalidConfiguration indicates the client configuration is invalid.
	ErrInvalidConfiguration = errors.New("textsecure: invalid configuration")

	// ErrInvalidArgument indicates a nil or invalid argument was passed to a public API method.
	ErrInvalidArgument = errors.New("textsecure: invalid argument")
)

// RouteError reports misuse of a route: an unknown name or a wrong number
// of template arguments.
type RouteError struct {
	Route     Route  // operation name as given by the caller
	Operation string // "lookup", "template", "format"
	Err       error  // ErrUnknownRoute or ErrRouteArity
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("textsecure: route %q %s failed: %v", string(e.Route), e.Operation, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// NewRouteError creates a RouteError with the given parameters.
func NewRouteError(route Route, operation string, err error) error {
	return &RouteError{
		Route:     route,
		Operation: operation,
		Err:       err,
	}
}

// StatusError carries a non-success HTTP status returned by the server.
type StatusError struct {
	Route      Route
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Route == "" {
		return fmt.Sprintf("textsecure: server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("textsecure: %s returned %d %s", e.Route, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps the status onto the matching sentinel so errors.Is works
// without inspecting the code.
func (e *StatusError) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
		return ErrAuthenticationFailed
	case e.StatusCode >= 500:
		return ErrNetwork
	case e.StatusCode >= 400:
		return ErrMalformedRequest
	default:
		return nil
	}
}

// NewStatusError creates a StatusError for the route and HTTP status code.
func NewStatusError(route Route, statusCode int) error {
	return &StatusError{Route: route, StatusCode: statusCode}
}

// ClassifyPushRegistrationError maps a failed push-registration error to one
// of the three failure kinds. The result is always a valid kind; errors that
// carry no network or authentication signal are request failures.
func ClassifyPushRegistrationError(err error) PushRegistrationError {
	switch {
	case err == nil:
		return PushRegistrationErrorRequest
	case errors.Is(err, ErrAuthenticationFailed):
		return PushRegistrationErrorAuthentication
	case errors.Is(err, ErrNetwork),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, io.ErrUnexpectedEOF):
		return PushRegistrationErrorNetwork
	}

	var ne net.Error
	if errors.As(err, &ne) {
		return PushRegistrationErrorNetwork
	}
	return PushRegistrationErrorRequest
}

// IsTemporary returns true if the error is temporary and the operation can be retried.
// Only network failures are temporary.
func IsTemporary(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyPushRegistrationError(err) == PushRegistrationErrorNetwork
}

// IsFatal returns true if retrying cannot succeed without the caller changing
// something: rejected credentials, or a misused route.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrAuthenticationFailed) {
		return true
	}
	var re *RouteError
	return errors.As(err, &re)
}

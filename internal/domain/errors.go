package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// Upstream failure taxonomy. These originate in the network client and are
// propagated unchanged by repositories and use cases.
var (
	ErrInvalidURL = errors.New("invalid url")
	ErrNoData     = errors.New("no data")
	ErrDecoding   = errors.New("decoding error")
	ErrNetwork    = errors.New("network error")
	ErrServer     = errors.New("server error")
	ErrUnknown    = errors.New("unknown error")
)

// DecodingError reports a response body that could not be decoded into the
// expected shape.
type DecodingError struct {
	Cause error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decoding error: %v", e.Cause)
}

func (e *DecodingError) Unwrap() []error { return []error{ErrDecoding, e.Cause} }

// NetworkError reports a transport-level failure (DNS, connect, TLS, timeout).
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Cause} }

// ServerError reports a non-2xx HTTP response.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

func (e *ServerError) Unwrap() error { return ErrServer }

// StatusCodeOf returns the HTTP status carried by a ServerError in err's chain,
// or 0 if there is none.
func StatusCodeOf(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

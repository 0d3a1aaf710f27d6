// ABOUTME: Custom error types for the admin panel core
// ABOUTME: RequestError is the single taxonomy for network/HTTP failures

package errors

import (
	"errors"
	"fmt"
)

// DefaultRequestMessage is used when the server does not provide a message
const DefaultRequestMessage = "API request failed"

// RequestError represents a failed call to the backend API.
// Message carries the server-provided message when one was returned.
type RequestError struct {
	Message    string
	StatusCode int
	Method     string
	URL        string
	Cause      error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsRequest checks if an error is a RequestError
func IsRequest(err error) bool {
	var requestErr *RequestError
	return errors.As(err, &requestErr)
}

// AsRequest returns the RequestError in err's chain, if any
func AsRequest(err error) (*RequestError, bool) {
	var requestErr *RequestError
	if errors.As(err, &requestErr) {
		return requestErr, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFoundError or a 404 RequestError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return true
	}
	if requestErr, ok := AsRequest(err); ok {
		return requestErr.StatusCode == 404
	}
	return false
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// Message returns the user-facing message for err
func Message(err error) string {
	if err == nil {
		return ""
	}
	if requestErr, ok := AsRequest(err); ok {
		return requestErr.Message
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return err.Error()
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

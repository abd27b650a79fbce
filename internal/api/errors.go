package api

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest indicates the request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrServerError indicates a server-side error
	ErrServerError = errors.New("server error")

	// ErrTimeout indicates the request timed out
	ErrTimeout = errors.New("request timed out")

	// ErrNoConnection indicates the API could not be reached at all
	ErrNoConnection = errors.New("no internet connection")

	// ErrInterrupted indicates the request was interrupted by a signal (EINTR).
	// Callers may simply try again.
	ErrInterrupted = errors.New("request interrupted")
)

// APIError represents a non-200 answer from the BART API
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d (%s): %s", e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("API error %d: %s (endpoint: %s)", e.StatusCode, e.Status, e.Endpoint)
}

// Is implements errors.Is for APIError
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == 404
	case ErrServerError:
		return e.StatusCode >= 500
	case ErrInvalidRequest:
		return e.StatusCode == 400
	}
	return false
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, status, endpoint string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
	}
}

// NewAPIErrorWithMessage creates an API error carrying the text of an
// error payload that came with the status
func NewAPIErrorWithMessage(statusCode int, status, endpoint, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// ServiceError is an error payload (<message><error>) inside an otherwise
// successful response, e.g. an invalid API key or an unknown station.
type ServiceError struct {
	Endpoint string
	Text     string
	Details  string
}

func (e *ServiceError) Error() string {
	if e.Details != "" {
		return e.Details
	}
	if e.Text != "" {
		return e.Text
	}
	return fmt.Sprintf("service error (endpoint: %s)", e.Endpoint)
}

// Is implements errors.Is for ServiceError
func (e *ServiceError) Is(target error) bool {
	return target == ErrServerError
}

// ValidationError represents a validation error for request parameters
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// Is implements errors.Is for ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Common validation errors
func ErrMissingField(field string) error {
	return NewValidationError(field, "field is required")
}

func ErrInvalidFormat(field, expected string) error {
	return NewValidationError(field, fmt.Sprintf("invalid format, expected %s", expected))
}

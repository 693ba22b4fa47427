package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode classifies application errors into a closed set.
// Every error that leaves the action layer carries exactly one of these.
type ErrorCode string

const (
	ErrCodeValidation     ErrorCode = "VALIDATION_ERROR"
	ErrCodeAuthentication ErrorCode = "AUTHENTICATION_ERROR"
	ErrCodeAuthorization  ErrorCode = "AUTHORIZATION_ERROR"
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeDatabase       ErrorCode = "DATABASE_ERROR"
)

// AppError is the application error type. The code and status code are
// fixed by the constructor; callers only choose the message (and, for
// validation errors, the offending field). The wrapped error is kept for
// diagnostics and never serialized.
type AppError struct {
	Message    string    `json:"message"`
	Code       ErrorCode `json:"code"`
	StatusCode int       `json:"status_code"`
	Field      string    `json:"field,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the original error for errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WriteJSON writes the error as a JSON response with its status code
func (e *AppError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// NewValidationError creates a VALIDATION_ERROR (400). field names the
// offending input field and may be empty for non-field failures.
func NewValidationError(message, field string) *AppError {
	return &AppError{
		Message:    message,
		Code:       ErrCodeValidation,
		StatusCode: http.StatusBadRequest,
		Field:      field,
	}
}

// NewAuthenticationError creates an AUTHENTICATION_ERROR (401)
func NewAuthenticationError(message string) *AppError {
	if message == "" {
		message = "Authentication required"
	}
	return &AppError{
		Message:    message,
		Code:       ErrCodeAuthentication,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewAuthorizationError creates an AUTHORIZATION_ERROR (403)
func NewAuthorizationError(message string) *AppError {
	if message == "" {
		message = "Not authorized to perform this action"
	}
	return &AppError{
		Message:    message,
		Code:       ErrCodeAuthorization,
		StatusCode: http.StatusForbidden,
	}
}

// NewNotFoundError creates a NOT_FOUND (404) for the named resource
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Message:    fmt.Sprintf("%s not found", resource),
		Code:       ErrCodeNotFound,
		StatusCode: http.StatusNotFound,
	}
}

// NewDatabaseError creates a DATABASE_ERROR (500). The original error is
// retained on Err for logging and errors.Is checks.
func NewDatabaseError(message string, err error) *AppError {
	return &AppError{
		Message:    message,
		Code:       ErrCodeDatabase,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

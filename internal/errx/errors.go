// Package errx defines the error taxonomy shared by the service and HTTP
// layers: validation failures, missing records, and internal integrity
// violations, each carrying an HTTP status and a safe user-facing message.
package errx

import (
	"errors"
	"fmt"
	"net/http"
)

// SystemErrorMessage is the user-facing fallback when internal errors occur.
const SystemErrorMessage = "internal server error"

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether the target matches the underlying error.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// Validation builds a user-correctable input error (HTTP 400).
func Validation(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// NotFound builds an absent-record error (HTTP 404).
func NotFound(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

// Integrity builds an internal invariant-violation error (HTTP 500). The
// cause is preserved for logging; Message stays safe to return to clients.
func Integrity(err error, message string) *AppError {
	return &AppError{Err: err, Status: http.StatusInternalServerError, Message: message}
}

// StatusOf extracts the HTTP status from an error chain, defaulting to 500
// for errors that carry no AppError.
func StatusOf(err error) int {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return http.StatusInternalServerError
}

// MessageOf extracts the safe message from an error chain. Errors without an
// AppError yield the generic system message so internals never leak.
func MessageOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return SystemErrorMessage
}

package errors

import (
	"fmt"
	"net/http"

	"ummana/internal/errors"
)

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

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy carrying a different user-facing message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches errors of the same business code so callers can compare against
// the predefined values even after WithMessage/WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Record not found",
		"",
	)

	ErrUnknownKind = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_KIND",
		"Unknown record kind",
		"",
	)

	// Directory-related errors
	ErrDirectoryUnavailable = NewBaseError(
		http.StatusBadGateway,
		"DIRECTORY_UNAVAILABLE",
		"Directory service unavailable",
		"",
	)

	ErrDirectoryRejected = NewBaseError(
		http.StatusBadGateway,
		"DIRECTORY_REJECTED",
		"Directory service rejected the request",
		"",
	)

	ErrListLoadFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"LIST_LOAD_FAILED",
		"Failed to load data. Please try again later.",
		"",
	)

	// Form-related errors
	ErrDraftNotFound = NewBaseError(
		http.StatusNotFound,
		"DRAFT_NOT_FOUND",
		"Form is no longer open",
		"",
	)

	ErrUnknownField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FIELD",
		"Field does not belong to this form",
		"",
	)

	ErrPickerUnavailable = NewBaseError(
		http.StatusBadRequest,
		"PICKER_UNAVAILABLE",
		"This form has no linked communities",
		"",
	)

	ErrSlotOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"SLOT_OUT_OF_RANGE",
		"Community slot does not exist",
		"",
	)

	ErrSlotLimitReached = NewBaseError(
		http.StatusConflict,
		"SLOT_LIMIT_REACHED",
		"Maximum number of communities reached",
		"",
	)

	ErrUnknownCommunity = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_COMMUNITY",
		"Community is not in the loaded community list",
		"",
	)

	ErrUnknownCapability = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_CAPABILITY",
		"Unknown facility capability",
		"",
	)

	// Deletion-related errors
	ErrConfirmationNotFound = NewBaseError(
		http.StatusNotFound,
		"CONFIRMATION_NOT_FOUND",
		"Delete confirmation has expired or was cancelled",
		"",
	)

	ErrNotImplemented = NewBaseError(
		http.StatusNotImplemented,
		"NOT_IMPLEMENTED",
		"Not implemented",
		"",
	)
)

// NewValidationError returns a validation failure carrying the inline message
// shown to the user in the open form.
func NewValidationError(message string) *BaseError {
	return ErrValidationFailed.WithMessage(message)
}

// NewDirectoryRejected passes an upstream failure through with its status and
// verbatim payload. An empty payload falls back to the given generic message.
func NewDirectoryRejected(status int, payload, fallback string) *BaseError {
	code := status
	if code < http.StatusBadRequest {
		code = http.StatusBadGateway
	}

	message := payload
	if message == "" {
		message = fallback
	}

	return &BaseError{
		httpCode:  code,
		errorCode: ErrDirectoryRejected.errorCode,
		message:   message,
		details:   fmt.Sprintf("directory responded with status %d", status),
	}
}

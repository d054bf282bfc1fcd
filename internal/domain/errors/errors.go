package errors

import (
	"net/http"

	"freedge/internal/errors"
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

// Predefined error types
var (
	// Registry entry errors
	ErrEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTRY_NOT_FOUND",
		"registry entry not found",
		"",
	)

	// Import errors
	ErrInvalidDataset = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_DATASET",
		"the dataset could not be imported",
		"",
	)

	ErrPreviewNotFound = NewBaseError(
		http.StatusNotFound,
		"PREVIEW_NOT_FOUND",
		"import preview not found or expired",
		"",
	)

	ErrPreviewStale = NewBaseError(
		http.StatusConflict,
		"PREVIEW_STALE",
		"the registry changed since the preview was made",
		"",
	)

	ErrRemoveAllNotConfirmed = NewBaseError(
		http.StatusConflict,
		"REMOVE_ALL_NOT_CONFIRMED",
		"the import would remove every registry entry and was not explicitly allowed",
		"",
	)

	// Check-in errors
	ErrAttemptNotFound = NewBaseError(
		http.StatusNotFound,
		"ATTEMPT_NOT_FOUND",
		"check-in attempt not found",
		"",
	)

	ErrAttemptSuperseded = NewBaseError(
		http.StatusConflict,
		"ATTEMPT_SUPERSEDED",
		"a newer check-in attempt exists for this entry",
		"",
	)

	ErrAttemptClosed = NewBaseError(
		http.StatusConflict,
		"ATTEMPT_CLOSED",
		"the check-in attempt was already resolved",
		"",
	)

	ErrInvalidResponse = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESPONSE",
		"unrecognized check-in response",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrDatasetTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"DATASET_TOO_LARGE",
		"dataset upload exceeds the configured size limit",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

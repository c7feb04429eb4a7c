package errors

import (
	"fmt"
	"net/http"

	"credkeeper/internal/errors"
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

// WithDetails returns a copy of the error carrying details.
// The copy still matches e with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return NewBaseError(e.httpCode, e.errorCode, e.message, details)
}

// Is matches any BaseError with the same error code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"email or password is incorrect",
		"",
	)

	// Hashing-related errors
	ErrUnsupportedAlgorithm = NewBaseError(
		http.StatusInternalServerError,
		"UNSUPPORTED_ALGORITHM",
		"unsupported hash algorithm",
		"",
	)

	// Request-related errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"request body could not be parsed",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// StoreErrorKind classifies a persistence failure.
type StoreErrorKind int

const (
	// StoreErrorExecution covers connectivity and any other driver failure.
	StoreErrorExecution StoreErrorKind = iota
	// StoreErrorConstraint covers constraint violations such as a duplicate email.
	StoreErrorConstraint
)

// StoreError wraps a failure reported by the user record store, implementing the AppError interface.
// The driver error is kept as the cause.
type StoreError struct {
	kind    StoreErrorKind
	op      string
	err     error
	details string
}

// NewStoreError creates a store error of the given kind for operation op.
func NewStoreError(kind StoreErrorKind, op string, err error, details string) *StoreError {
	return &StoreError{
		kind:    kind,
		op:      op,
		err:     err,
		details: details,
	}
}

// NewDatabaseExecuteError creates a store error for a failed statement
func NewDatabaseExecuteError(op string, err error, details string) *StoreError {
	return NewStoreError(StoreErrorExecution, op, err, details)
}

// NewConstraintViolationError creates a store error for a rejected write
func NewConstraintViolationError(op string, err error, details string) *StoreError {
	return NewStoreError(StoreErrorConstraint, op, err, details)
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("%s: %s", e.op, e.Message())
	}

	return fmt.Sprintf("%s: %s: %v", e.op, e.Message(), e.err)
}

// Unwrap returns the underlying driver error
func (e *StoreError) Unwrap() error {
	return e.err
}

// Kind reports the failure classification
func (e *StoreError) Kind() StoreErrorKind {
	return e.kind
}

// Op returns the store operation that failed
func (e *StoreError) Op() string {
	return e.op
}

// IsConstraintViolation reports whether the store rejected the write
func (e *StoreError) IsConstraintViolation() bool {
	return e.kind == StoreErrorConstraint
}

// HTTPCode returns the HTTP status code
func (e *StoreError) HTTPCode() int {
	if e.kind == StoreErrorConstraint {
		return http.StatusConflict
	}

	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreError) ErrorCode() string {
	if e.kind == StoreErrorConstraint {
		return "USER_ALREADY_EXISTS"
	}

	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreError) Message() string {
	if e.kind == StoreErrorConstraint {
		return "email is already registered"
	}

	return "database execution failed"
}

// Details returns detailed error information
func (e *StoreError) Details() string {
	return e.details
}

// AsStoreError finds the first StoreError in err's chain.
func AsStoreError(err error) (*StoreError, bool) {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr, true
	}

	return nil, false
}

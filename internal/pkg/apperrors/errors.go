package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthorized       = errors.New("authentication required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrMissingParameter = errors.New("missing required parameter")
	ErrBadRequest       = errors.New("bad request")

	// Account errors
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateAccount = errors.New("account already exists")

	// Store errors
	ErrConnection = errors.New("database connection failed")
)

// Fee errors
var (
	ErrFeeNotFound    = errors.New("fee record not found")
	ErrFeeAlreadyPaid = errors.New("fee has already been paid")
)

// Document request errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyReviewed     = errors.New("application has already been reviewed")
	ErrInvalidAction       = errors.New("invalid review action")
)

// Exam/result errors
var (
	ErrExamNotFound = errors.New("exam not found")
)

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewMissingParameterError creates a missing-parameter error naming the parameter
func NewMissingParameterError(param string) error {
	return &CustomError{
		Err:     ErrMissingParameter,
		Message: param + " is required",
	}
}

// NewForbiddenError creates a permission-denied error with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

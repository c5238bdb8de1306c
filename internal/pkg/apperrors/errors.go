package apperrors

import "errors"

// Common errors
var (
	// Data source errors
	ErrCatalogNotFound  = errors.New("course catalog file not found")
	ErrStoreUnavailable = errors.New("ratings store unavailable")

	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// NewStoreUnavailableError creates a new custom error for a store that cannot be opened
func NewStoreUnavailableError(message string) error {
	return &CustomError{
		Err:     ErrStoreUnavailable,
		Message: message,
	}
}

// NewCatalogNotFoundError creates a new custom error for a missing catalog file
func NewCatalogNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrCatalogNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

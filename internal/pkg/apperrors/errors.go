package apperrors

import "errors"

// Common errors
var (
	// ErrResourceNotFound is returned when the addressed entity does not exist
	ErrResourceNotFound = errors.New("resource not found")
	// ErrConflict is returned when a create would break a uniqueness rule
	ErrConflict = errors.New("conflict")
	// ErrMissingField is returned when a required input is absent or a referenced entity does not exist
	ErrMissingField = errors.New("missing field")
	// ErrValidationFailed is returned when a request cannot be decoded at all
	ErrValidationFailed = errors.New("validation failed")
)

// NewMissingFieldError creates a MissingField error carrying a stable code and message
func NewMissingFieldError(code, message string) *CustomError {
	return NewCustomError(ErrMissingField, message).WithCode(code)
}

// NewValidationError wraps a decoding failure as ErrValidationFailed
func NewValidationError(message string) *CustomError {
	return NewCustomError(ErrValidationFailed, message)
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
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

// AsCustomError extracts the first CustomError in err's chain
func AsCustomError(err error) (*CustomError, bool) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

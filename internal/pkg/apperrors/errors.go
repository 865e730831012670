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
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Admissions domain errors
var (
	ErrApplicantNotFound  = errors.New("applicant not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrUploadNotFound     = errors.New("upload not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrExtractionFailed marks an unusable response from the inference
	// service. Callers degrade to an empty candidate list; this error never
	// fails an applicant-facing request.
	ErrExtractionFailed = errors.New("course extraction failed")

	// ErrPeriodClosed is returned for submissions outside the application
	// period.
	ErrPeriodClosed = errors.New("application period is closed")

	// ErrInvalidPDF is returned when an uploaded file is not a well-formed
	// PDF document.
	ErrInvalidPDF = errors.New("file is not a valid PDF")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
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

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a CustomError wrapping ErrValidationFailed so
// the offending fields can be re-rendered by the caller.
func NewValidationError(message string, details map[string]interface{}) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a CustomError wrapping ErrResourceNotFound.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

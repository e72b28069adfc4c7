package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code of the failed request, 0 when no response was received
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

// Is matches errors sharing the business error code, so a detailed
// variant still matches its catalogue entry.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
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

// Predefined error types surfaced to the UI layer
var (
	// Session-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"Please login to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please login again",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the entered details",
		"",
	)

	// Verification-flow errors
	ErrVerificationCodeMissing = NewBaseError(
		http.StatusBadRequest,
		"VERIFICATION_CODE_MISSING",
		"Please enter the verification code",
		"",
	)

	// Upload-related errors, mapped from the profile-image upload path
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"Image is too large",
		"",
	)

	ErrUploadUnsupportedType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UPLOAD_UNSUPPORTED_TYPE",
		"Unsupported image type. Please upload a JPG, PNG or WebP image",
		"",
	)

	ErrUploadServerError = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_SERVER_ERROR",
		"Server error while uploading the image. Please try again",
		"",
	)

	ErrRequestTimeout = NewBaseError(
		0,
		"REQUEST_TIMEOUT",
		"The request timed out. Please check your connection and try again",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource was not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong. Please try again",
		"",
	)
)

// APIError represents a backend-reported failure, implementing the
// AppError interface. Its message is the backend's message field when
// present, otherwise the per-operation fallback the caller supplied.
type APIError struct {
	statusCode int
	message    string
	details    string
}

// NewAPIError creates an error for a non-2xx backend response.
func NewAPIError(statusCode int, message, details string) *APIError {
	return &APIError{
		statusCode: statusCode,
		message:    message,
		details:    details,
	}
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code of the failed request
func (e *APIError) HTTPCode() int {
	return e.statusCode
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	return "API_ERROR"
}

// Message returns the user-friendly error message
func (e *APIError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *APIError) Details() string {
	return e.details
}

// UserMessage extracts the string the UI should show for err: the
// AppError message when err carries one, otherwise err's own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return err.Error()
}

// StatusCode returns the HTTP status carried by err, or 0 when err holds
// no response status (transport failures, timeouts).
func StatusCode(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return 0
}

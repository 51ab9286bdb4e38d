package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrValidation is returned when request input is malformed.
	ErrValidation = errors.New("invalid input")
	// ErrDuplicateName is returned when a dish name already exists.
	ErrDuplicateName = errors.New("dish name already exists")
	// ErrNotFound is returned when a dish is not found.
	ErrNotFound = errors.New("dish not found")
	// ErrUnauthorized is returned when a request lacks a valid auth token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when the admin password is incorrect.
	ErrInvalidCredentials = errors.New("invalid password")
	// ErrInsufficientCatalog is returned when the catalog is too small to fill a week.
	ErrInsufficientCatalog = errors.New("not enough dishes to generate a week menu")
	// ErrNoAvailableDish is returned when every eligible dish is already used this week.
	ErrNoAvailableDish = errors.New("no available dish for this day")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case errors.Is(err, ErrDuplicateName):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "DUPLICATE_NAME")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInsufficientCatalog):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_CATALOG")
	case errors.Is(err, ErrNoAvailableDish):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NO_AVAILABLE_DISH")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a document is not found.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when a document id cannot be parsed.
	ErrInvalidID = errors.New("invalid id")
	// ErrContentUnavailable is returned when the content store cannot be read.
	ErrContentUnavailable = errors.New("content unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
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
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidID):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidID.Error(), "INVALID_ID")
	case errors.Is(err, ErrContentUnavailable):
		return NewHTTPError(http.StatusInternalServerError, ErrContentUnavailable.Error(), "CONTENT_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

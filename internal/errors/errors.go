package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user lookup misses.
	ErrUserNotFound = errors.New("User not found")
	// ErrNoUsers is returned when the user list is empty.
	ErrNoUsers = errors.New("No users found")
	// ErrEmailTaken is returned when a signup reuses a registered email.
	ErrEmailTaken = errors.New("Email already registered")
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password so a caller cannot probe which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrGoalNotFound is returned when a goal lookup misses.
	ErrGoalNotFound = errors.New("Goal not found")
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

// MapErrorToHTTP maps domain errors to HTTP errors. Anything outside the
// taxonomy collapses to a generic 500 so internals never leak to callers.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrNoUsers):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NO_USERS")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrGoalNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "GOAL_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

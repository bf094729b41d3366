package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when a protected route has no valid session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering an email that already exists, ignoring case.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrToDoNotFound covers both a missing to-do and one owned by someone else.
	ErrToDoNotFound = errors.New("todo not found")
	// ErrToDoAlreadyComplete is returned when completing a complete to-do.
	ErrToDoAlreadyComplete = errors.New("todo already complete")
	// ErrToDoAlreadyIncomplete is returned when reopening an incomplete to-do.
	ErrToDoAlreadyIncomplete = errors.New("todo already incomplete")
)

// ValidationError carries per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

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
	Fields     map[string]string
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

// Body returns the JSON payload for the error: the field map for
// validation failures, an ErrorResponse otherwise.
func (e *HTTPError) Body() interface{} {
	if e.Fields != nil {
		return e.Fields
	}
	return e.ToErrorResponse()
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown is an
// internal error with a generic message.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: err.Error(), Code: "VALIDATION_ERROR", Fields: validationErr.Fields}
	case errors.Is(err, ErrEmailTaken):
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
			Code:       "EMAIL_TAKEN",
			Fields:     map[string]string{"email": "There is already a user with this email"},
		}
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "Unauthorized", "UNAUTHORIZED")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusBadRequest, "There was a problem with login credentials", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrToDoNotFound):
		return NewHTTPError(http.StatusNotFound, "Could not find ToDo", "TODO_NOT_FOUND")
	case errors.Is(err, ErrToDoAlreadyComplete):
		return NewHTTPError(http.StatusBadRequest, "ToDo is already complete", "TODO_ALREADY_COMPLETE")
	case errors.Is(err, ErrToDoAlreadyIncomplete):
		return NewHTTPError(http.StatusBadRequest, "ToDo is already incomplete", "TODO_ALREADY_INCOMPLETE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad credentials", ErrInvalidCredentials, http.StatusBadRequest, "INVALID_CREDENTIALS"},
		{"todo not found", ErrToDoNotFound, http.StatusNotFound, "TODO_NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("complete todo: %w", ErrToDoNotFound), http.StatusNotFound, "TODO_NOT_FOUND"},
		{"already complete", ErrToDoAlreadyComplete, http.StatusBadRequest, "TODO_ALREADY_COMPLETE"},
		{"already incomplete", ErrToDoAlreadyIncomplete, http.StatusBadRequest, "TODO_ALREADY_INCOMPLETE"},
		{"email taken", ErrEmailTaken, http.StatusBadRequest, "EMAIL_TAKEN"},
		{"validation", NewValidationError("content", "Content field cannot be empty"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
		})
	}
}

func TestHTTPError_Body(t *testing.T) {
	fields := MapErrorToHTTP(NewValidationError("content", "Content field cannot be empty")).Body()
	assert.Equal(t, map[string]string{"content": "Content field cannot be empty"}, fields)

	dup := MapErrorToHTTP(ErrEmailTaken).Body()
	assert.Equal(t, map[string]string{"email": "There is already a user with this email"}, dup)

	internal := MapErrorToHTTP(errors.New("dial tcp: secret-host:3306 refused")).Body()
	assert.Equal(t, ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}, internal)
}

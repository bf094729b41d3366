package router

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tasktrack/internal/errors"
	"tasktrack/internal/handler"
)

func TestValidator_RegisterRequest(t *testing.T) {
	v := NewValidator()

	ok := handler.RegisterRequest{Email: "a@x.com", Password: "secret1", Name: "Ann", ConfirmPassword: "secret1"}
	assert.NoError(t, v.Validate(&ok))

	bad := ok
	bad.Password = "secret2"
	bad.ConfirmPassword = "secret1"
	bad.Name = strings.Repeat("a", 31)

	err := v.Validate(&bad)
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Password and Confirm Password fields must match", verr.Fields["confirmPassword"])
	assert.Contains(t, verr.Fields, "name")
	assert.NotContains(t, verr.Fields, "password")
}

func TestValidator_UnknownTagFallsBack(t *testing.T) {
	type probe struct {
		Age int `json:"age" validate:"gte=18"`
	}
	err := NewValidator().Validate(&probe{Age: 3})

	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "age is invalid", verr.Fields["age"])
}

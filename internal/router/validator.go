package router

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "tasktrack/internal/errors"
)

// fieldMessages maps "<json field>.<tag>" to the message shown to clients.
var fieldMessages = map[string]string{
	"email.nonblank":           "Email field cannot be empty",
	"email.email":              "Email is invalid, please provide a valid email",
	"password.nonblank":        "Password field cannot be empty",
	"password.min":             "Password must be between 6 and 150 characters long",
	"password.max":             "Password must be between 6 and 150 characters long",
	"name.nonblank":            "Name field cannot be empty",
	"name.min":                 "Name must be between 2 and 30 characters long",
	"name.max":                 "Name must be between 2 and 30 characters long",
	"confirmPassword.nonblank": "Confirm Password field cannot be empty",
	"confirmPassword.eqfield":  "Password and Confirm Password fields must match",
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their JSON names
// and knows the "nonblank" rule (required after trimming whitespace).
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface. Failures come back as a
// *errors.ValidationError with one message per field.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := fields[field]; seen {
			continue
		}
		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		fields[field] = msg
	}
	return &apperrors.ValidationError{Fields: fields}
}

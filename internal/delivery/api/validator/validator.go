// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator reports failures as *domainerrors.ValidationError keyed by
// the submitted field name.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fields := domainerrors.FieldErrors{}
	for _, fieldErr := range validationErrs {
		fields.Add(fieldErr.Field(), message(fieldErr))
	}

	return domainerrors.NewValidationError(fields)
}

// fieldName prefers the form tag, then json, then query.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"form", "json", "query"} {
		name, _, _ := strings.Cut(field.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	default:
		return "Invalid value"
	}
}

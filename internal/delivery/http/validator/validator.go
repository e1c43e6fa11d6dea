// Package validator plugs go-playground validation into Echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "taskboard/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names from json tags so
// error payloads match the wire format rather than Go struct fields.
func New() *RequestValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks the struct tags and converts failures into a
// ValidationError carrying one entry per offending field.
func (v *RequestValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrors := make([]domainerrors.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrors = append(fieldErrors, domainerrors.FieldError{
			Field:   fieldErr.Field(),
			Message: describe(fieldErr),
		})
	}

	return domainerrors.NewValidationError("Validation failed", fieldErrors)
}

// describe renders a human-readable message for a single tag failure.
func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldErr.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fieldErr.Field(), fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fieldErr.Field(), strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldErr.Field())
	}
}

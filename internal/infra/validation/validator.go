// Package validation wraps go-playground/validator for the synchronous
// input checks every store performs before dispatching a backend call.
package validation

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator validates store input DTOs via their validate tags.
type Validator struct {
	validate *validator.Validate
}

// New creates the shared validator instance.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Struct validates input and converts the first failure into a
// user-facing validation error.
func (v *Validator) Struct(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(describe(fieldErrs[0])))
	}

	return errors.Wrap(err, "validation failed")
}

// describe renders one field error as a short human-readable hint.
func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	case "max":
		return field + " must be at most " + fe.Param()
	case "len":
		return field + " must be exactly " + fe.Param() + " characters"
	case "numeric":
		return field + " must contain only digits"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	default:
		return field + " is invalid"
	}
}

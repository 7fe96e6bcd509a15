// Package validation applies declarative schemas to operation parameters,
// collecting every violation in a single pass rather than stopping at the
// first failure.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/micahgtan/to-do-list/internal/core/domain"
)

// Engine wraps a validator configured for all-errors collection with
// json-tag field keys.
type Engine struct {
	validate *validator.Validate
}

// New constructs a validation engine.
func New() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Engine{validate: v}
}

// Check validates parameters against their schema tags and returns every
// violation found. A nil result means the parameters are valid.
func (e *Engine) Check(parameters any) []domain.Violation {
	err := e.validate.Struct(parameters)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []domain.Violation{{Message: err.Error()}}
	}

	violations := make([]domain.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domain.Violation{
			Message: message(fe),
			Key:     fe.Field(),
		})
	}
	return violations
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	case "len":
		return fmt.Sprintf("%q length must be %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", fe.Field())
	}
}

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidator validates structs annotated with `validate` tags.
type structValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] backed by go-playground/validator
// that names properties after their `json` tags.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonTagName)

	return &structValidator{validate: v}
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}

// Validate checks obj (a struct or a pointer to one) against its tags. When
// fields are given, only those struct fields are checked.
func (s *structValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	return groupFieldErrors(fieldErrors)
}

// groupFieldErrors folds violations of the same property into one
// [FieldError], keeping the order in which properties were first reported.
func groupFieldErrors(fieldErrors validator.ValidationErrors) ValidationErrors {
	result := make(ValidationErrors, 0, len(fieldErrors))
	index := make(map[string]int, len(fieldErrors))

	for _, fe := range fieldErrors {
		property := propertyPath(fe.Namespace())
		msg := message(fe, property)

		if i, ok := index[property]; ok {
			result[i].Messages = append(result[i].Messages, msg)
			continue
		}

		index[property] = len(result)
		result = append(result, FieldError{
			Property: property,
			Value:    fe.Value(),
			Messages: []string{msg},
		})
	}

	return result
}

// propertyPath drops the root struct name from a validator namespace:
// "CreateOfferDTO.coordinates.latitude" becomes "coordinates.latitude".
func propertyPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

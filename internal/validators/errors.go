package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldError holds every violated rule of a single input property.
type FieldError struct {
	// Property is the JSON path of the property, e.g. "coordinates.latitude"
	// or "photo[2]".
	Property string

	// Value is the rejected value.
	Value any

	// Messages are human-readable descriptions of the violated rules.
	Messages []string
}

// ValidationErrors lists invalid properties in the order they were found.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Property+": "+strings.Join(fe.Messages, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

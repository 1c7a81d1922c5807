package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/MKhiriev/six-cities/internal/validators"
)

const bodyProperty = "body"

// ValidateDTOMiddleware decodes the JSON body into a T, validates it and
// attaches it as [Request.DTO]. Every violated rule of every property is
// reported at once, type mismatches included.
type ValidateDTOMiddleware[T any] struct {
	validator validators.Validator
}

func NewValidateDTOMiddleware[T any](validator validators.Validator) *ValidateDTOMiddleware[T] {
	return &ValidateDTOMiddleware[T]{validator: validator}
}

func (m *ValidateDTOMiddleware[T]) Execute(w http.ResponseWriter, r *Request, next HandlerFunc) error {
	message := fmt.Sprintf("Validation error: %q", r.URL.Path)

	dto := new(T)
	fields, err := decodeProperties(r.Request.Body, dto)
	if err != nil {
		return NewValidationError(message, "ValidateDTOMiddleware", bodyErrorField(err)).WithCause(err)
	}

	if err = m.validator.Validate(r.Context(), dto); err != nil {
		var validationErrors validators.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return fmt.Errorf("validating %T: %w", dto, err)
		}
		fields = mergeFields(fields, fieldsFromValidation(validationErrors))
	}

	if len(fields) > 0 {
		sortByDeclaration(fields, reflect.TypeOf(dto).Elem())
		return NewValidationError(message, "ValidateDTOMiddleware", fields...)
	}

	r.DTO = dto
	return next(w, r)
}

// decodeProperties decodes a JSON object into dto one property at a time,
// so a value of the wrong type in one property leaves the others decoded.
// It returns a field per property that could not be decoded. err is set only
// when the body is not a JSON object.
func decodeProperties(body io.Reader, dto any) ([]ValidationErrorField, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&raw); err != nil {
		return nil, err
	}

	target := reflect.ValueOf(dto).Elem()
	if target.Kind() != reflect.Struct {
		data, err := json.Marshal(raw)
		if err != nil {
			return nil, err
		}
		return nil, json.Unmarshal(data, dto)
	}

	var fields []ValidationErrorField
	for i := range target.NumField() {
		name, ok := jsonName(target.Type().Field(i))
		if !ok {
			continue
		}

		value, found := lookupProperty(raw, name)
		if !found {
			continue
		}

		if err := json.Unmarshal(value, target.Field(i).Addr().Interface()); err != nil {
			fields = append(fields, typeErrorField(name, value, err))
		}
	}

	return fields, nil
}

func jsonName(sf reflect.StructField) (string, bool) {
	if !sf.IsExported() {
		return "", false
	}

	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return "", false
	case "":
		return sf.Name, true
	default:
		return name, true
	}
}

// lookupProperty matches keys the way encoding/json does: exact first, then
// case-insensitively.
func lookupProperty(raw map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if value, ok := raw[name]; ok {
		return value, true
	}
	for key, value := range raw {
		if strings.EqualFold(key, name) {
			return value, true
		}
	}
	return nil, false
}

func typeErrorField(name string, value json.RawMessage, err error) ValidationErrorField {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		property := name
		if typeErr.Field != "" {
			property = name + "." + typeErr.Field
		}
		return ValidationErrorField{
			Property: property,
			Value:    typeErr.Value,
			Messages: []string{fmt.Sprintf("%s must be of type %s", property, typeErr.Type)},
		}
	}

	return ValidationErrorField{
		Property: name,
		Value:    string(value),
		Messages: []string{fmt.Sprintf("%s has an invalid value", name)},
	}
}

func bodyErrorField(err error) ValidationErrorField {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return ValidationErrorField{Property: bodyProperty, Messages: []string{"request body should not be empty"}}
	case errors.As(err, &typeErr):
		return ValidationErrorField{Property: bodyProperty, Messages: []string{"request body must be a JSON object"}}
	default:
		return ValidationErrorField{Property: bodyProperty, Messages: []string{"request body must be valid JSON"}}
	}
}

// mergeFields appends rule violations to decode failures, leaving out
// properties (and their nested paths) that already failed to decode.
func mergeFields(decodeFields, ruleFields []ValidationErrorField) []ValidationErrorField {
	merged := decodeFields
	for _, f := range ruleFields {
		if !coveredBy(f.Property, decodeFields) {
			merged = append(merged, f)
		}
	}
	return merged
}

func coveredBy(property string, fields []ValidationErrorField) bool {
	for _, f := range fields {
		if property == f.Property ||
			strings.HasPrefix(property, f.Property+".") ||
			strings.HasPrefix(property, f.Property+"[") {
			return true
		}
	}
	return false
}

// sortByDeclaration orders fields by the declaration order of their
// top-level property in t.
func sortByDeclaration(fields []ValidationErrorField, t reflect.Type) {
	if t.Kind() != reflect.Struct {
		return
	}

	order := make(map[string]int, t.NumField())
	for i := range t.NumField() {
		if name, ok := jsonName(t.Field(i)); ok {
			order[name] = i
		}
	}

	position := func(property string) int {
		top, _, _ := strings.Cut(property, ".")
		top, _, _ = strings.Cut(top, "[")
		if i, ok := order[top]; ok {
			return i
		}
		return len(order)
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return position(fields[i].Property) < position(fields[j].Property)
	})
}

func fieldsFromValidation(errs validators.ValidationErrors) []ValidationErrorField {
	fields := make([]ValidationErrorField, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, ValidationErrorField{
			Property: e.Property,
			Value:    e.Value,
			Messages: e.Messages,
		})
	}
	return fields
}

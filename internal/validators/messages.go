package validators

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var oneOfValuePattern = regexp.MustCompile(`'[^']*'|\S+`)

func message(fe validator.FieldError, property string) string {
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return property + " should not be empty"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be longer than or equal to %s characters", property, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s elements", property, param)
		default:
			return fmt.Sprintf("%s must not be less than %s", property, param)
		}
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", property, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain no more than %s elements", property, param)
		default:
			return fmt.Sprintf("%s must not be greater than %s", property, param)
		}
	case "len":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain exactly %s elements", property, param)
		default:
			return fmt.Sprintf("%s must be exactly %s characters long", property, param)
		}
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s", property, oneOfValues(param))
	case "email":
		return property + " must be an email"
	case "datetime":
		return property + " must be a valid ISO 8601 date string"
	case "hexadecimal":
		return property + " must be a hexadecimal number"
	case "latitude":
		return property + " must be a latitude string or number"
	case "longitude":
		return property + " must be a longitude string or number"
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", property, fe.Tag())
	}
}

func oneOfValues(param string) string {
	values := oneOfValuePattern.FindAllString(param, -1)
	for i, v := range values {
		values[i] = strings.Trim(v, "'")
	}
	return strings.Join(values, ", ")
}

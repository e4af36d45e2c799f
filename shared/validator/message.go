package validator

import (
	"errors"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lt":       "{field} must be less than {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of [{param}]",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
	}

	lengthMessages = map[string]string{
		"max": "{field} must be at most {param} characters long",
		"min": "{field} must be at least {param} characters long",
	}

	itemMessages = map[string]string{
		"max": "{field} must contain at most {param} item(s)",
		"min": "{field} must contain at least {param} item(s)",
	}
)

// message renders every violation in struct order.
func message(err error) []string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []string{err.Error()}
	}

	result := make([]string, 0, len(valErrors))

	for _, valErr := range valErrors {
		result = append(result, describe(valErr))
	}

	return result
}

func describe(valErr val.FieldError) string {
	return render(valErr, fieldName(valErr))
}

func render(valErr val.FieldError, field string) string {
	tmpl := messages[valErr.Tag()]

	switch valErr.Kind() {
	case reflect.String:
		if msg, ok := lengthMessages[valErr.Tag()]; ok {
			tmpl = msg
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		if msg, ok := itemMessages[valErr.Tag()]; ok {
			tmpl = msg
		}
	}

	if tmpl == "" {
		tmpl = "{field} is invalid"
	}

	msg := strings.ReplaceAll(tmpl, "{field}", field)

	return strings.ReplaceAll(msg, "{param}", valErr.Param())
}

// fieldName keeps the path below the top level struct, e.g. rooms[1].room_number.
func fieldName(valErr val.FieldError) string {
	namespace := valErr.Namespace()

	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return valErr.Field()
}

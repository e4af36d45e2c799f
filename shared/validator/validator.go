package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"hms/shared/failure"
	"io"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// Checker is implemented by requests with rules spanning several fields. Its messages
// are reported after the tag violations.
type Checker interface {
	Check() []string
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})
}

// Validate decodes the JSON body into data, sanitizes its strings and validates the
// result. Every failed rule is reported in the returned Failure.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	Sanitize(data)

	return ValidateStruct(data)
}

// Decode reads and sanitizes the JSON body without validating it.
func Decode[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	Sanitize(data)

	return nil
}

func ValidateStruct[T any](data *T) error {
	var messages []string

	if err := validate.Struct(data); err != nil {
		messages = message(err)
	}

	if checker, ok := any(data).(Checker); ok {
		messages = append(messages, checker.Check()...)
	}

	return failure.Validation(messages) //nolint:wrapcheck
}

// ValidateVar checks a single value such as a path parameter; name labels the messages.
func ValidateVar(name string, field any, tag string) error {
	var valErrors val.ValidationErrors

	err := validate.Var(field, tag)
	if err == nil {
		return nil
	}

	if !errors.As(err, &valErrors) {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	messages := make([]string, 0, len(valErrors))
	for _, valErr := range valErrors {
		messages = append(messages, render(valErr, name))
	}

	return failure.Validation(messages) //nolint:wrapcheck
}

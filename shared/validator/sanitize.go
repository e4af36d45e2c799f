package validator

import (
	"html"
	"reflect"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Sanitize strips markup from and trims every string reachable from data, walking
// nested structs, slices and pointers in place.
func Sanitize(data any) {
	sanitizeValue(reflect.ValueOf(data))
}

func sanitizeValue(value reflect.Value) {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !value.IsNil() {
			sanitizeValue(value.Elem())
		}
	case reflect.Struct:
		for i := range value.NumField() {
			if value.Type().Field(i).IsExported() {
				sanitizeValue(value.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range value.Len() {
			sanitizeValue(value.Index(i))
		}
	case reflect.String:
		if value.CanSet() {
			value.SetString(SanitizeString(value.String()))
		}
	}
}

// SanitizeString removes HTML and surrounding whitespace. Entities produced by the
// policy are decoded back so "Tom & Jerry" survives unchanged.
func SanitizeString(value string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(value)))
}

// Package validation wraps go-playground/validator to report schema
// violations as a field/message list suitable for API responses.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid field in a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var global = New()

// New returns a Validate instance that reports fields by their json tag name.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates v against its `validate` tags. A nil result means valid.
func Struct(v any) []FieldError {
	err := global.Struct(v)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: "invalid request body"}}
	}
	out := make([]FieldError, 0, len(vErrs))
	for _, ve := range vErrs {
		out = append(out, FieldError{Field: ve.Field(), Message: message(ve)})
	}
	return out
}

func message(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if ve.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", ve.Param())
		}
		return fmt.Sprintf("Must be at least %s", ve.Param())
	case "max":
		if ve.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", ve.Param())
		}
		return fmt.Sprintf("Must be at most %s", ve.Param())
	case "e164":
		return "Must be a valid phone number"
	default:
		return "Invalid value"
	}
}

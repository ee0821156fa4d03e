package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/Alchemy_Go/internal/brewing"
)

var (
	validatorOnce    sync.Once
	requestValidator *validator.Validate
)

// fieldMessages maps validation tags to client-facing messages. Tags that
// carry a parameter use it as the format argument.
var fieldMessages = map[string]string{
	"required": "This field is required",
	"notblank": "Must not be blank",
	"sortkey":  "Must be one of: value, name",
	"min":      "Must be at least %s",
	"max":      "Must be at most %s",
}

func getValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// report fields by their JSON names so errors match the request body
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
			_, err := brewing.ParseSortKey(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		requestValidator = v
	})
	return requestValidator
}

// validateRequest checks a decoded request body against its struct tags
func validateRequest(req any) error {
	return getValidator().Struct(req)
}

// fieldErrors turns a validation failure into a field -> message map
// without exposing Go type names
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		msg, ok := fieldMessages[e.Tag()]
		switch {
		case !ok:
			msg = "Invalid value"
		case e.Param() != "":
			msg = fmt.Sprintf(msg, e.Param())
		}
		out[e.Field()] = msg
	}
	return out
}

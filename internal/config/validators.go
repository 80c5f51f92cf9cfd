package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerLetter adds a custom validator ensuring a field holds a single letter a-z.
// It registers both the validation logic and a human-readable error message,
// and reports fields by their label tag.
func registerLetter(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"letter",
		validateLetter,
		"{0} must be a single letter a-z",
	); err != nil {
		return fmt.Errorf("registering letter validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(func(fld reflect.StructField) string {
		const splitSize = 2

		name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	return nil
}

// validateLetter checks that a string field holds exactly one letter a-z.
func validateLetter(fl validator.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() != reflect.String {
		return false
	}

	value := field.String()

	return len(value) == 1 && value[0] >= 'a' && value[0] <= 'z'
}

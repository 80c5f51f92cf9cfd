// Package config holds the runtime configuration of gohill and its validation.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// Config is populated from flags, GOHILL_* environment variables and an optional config file.
type Config struct {
	// Show prints the configuration and exits
	Show bool `json:"-"`

	// MaxLength caps the number of sanitized plaintext letters
	MaxLength int `json:"max-length" mapstructure:"max-length" validate:"min=1" label:"--max-length"`

	// Padding is the letter filling the last block
	Padding string `json:"padding" validate:"letter" label:"--padding"`

	// LineWidth is the number of letters per printed line
	LineWidth int `json:"line-width" mapstructure:"line-width" validate:"min=1" label:"--line-width"`

	// FieldWidth is the column width of a printed key entry
	FieldWidth int `json:"field-width" mapstructure:"field-width" validate:"min=1" label:"--field-width"`

	// Output optionally receives the raw ciphertext
	Output string `json:"output,omitempty" label:"--output"`

	Stats   bool `json:"stats"`
	Quiet   bool `json:"quiet"`
	Verbose bool `json:"verbose"`

	// File is the optional JSONC config file
	File string `json:"config,omitempty" mapstructure:"config"`

	// Positional arguments
	KeyFile       string `json:"key-file"       mapstructure:"-" validate:"required" label:"key file"`
	PlaintextFile string `json:"plaintext-file" mapstructure:"-" validate:"required" label:"plaintext file"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerLetter(validator); err != nil {
		return fmt.Errorf("registering validations: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return errs[0]
	case len(errs) > 1:
		return errors.Join(errs...)
	}

	return nil
}

// PaddingLetter returns the configured padding as a single byte.
// It must only be called on a validated configuration.
func (c Config) PaddingLetter() byte {
	return c.Padding[0]
}

// Package validate carries the field-level validation result shared by the
// request handlers. Validation never touches the store; failures are reported
// as a list of field errors the API serializes on 400 responses.
package validate

import (
	"fmt"
	"unicode/utf8"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field errors from a validation pass.
type Errors []FieldError

// Add appends a field error.
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Ok reports whether the validation pass found no errors.
func (e Errors) Ok() bool {
	return len(e) == 0
}

// MinLen adds an error when value is shorter than min characters. Length is
// counted in runes so multibyte input is measured the way a user reads it.
func (e *Errors) MinLen(field, value string, min int) {
	if utf8.RuneCountInString(value) < min {
		e.Add(field, fmt.Sprintf("%s must be at least %d characters", field, min))
	}
}

// Required adds an error when value is empty.
func (e *Errors) Required(field, value string) {
	if value == "" {
		e.Add(field, fmt.Sprintf("%s is required", field))
	}
}

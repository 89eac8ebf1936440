package errors

import (
	"fmt"
	"strings"
)

// ValidationError collects per-field validation failures so a caller sees
// every problem with a record at once instead of the first one found.
type ValidationError struct {
	// Fields maps field names to their validation error messages
	Fields map[string][]string `json:"fields"`
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(v.Fields))
	for field, errs := range v.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(errs, ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasErrors returns true if any field failed validation
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError converts the collected failures into an InvalidArgument error
// carrying the per-field detail as metadata.
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta("validation_errors", v.Fields)
}

// ValidationBuilder accumulates field checks for a record and builds a
// single InvalidArgument error, or nil when everything passed.
type ValidationBuilder struct {
	err *ValidationError
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		err: &ValidationError{Fields: make(map[string][]string)},
	}
}

// Field records a validation failure for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.err.Fields[field] = append(vb.err.Fields[field], message)
	return vb
}

// Fieldf records a formatted validation failure for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...interface{}) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// Required checks that a string field is present and not blank
func (vb *ValidationBuilder) Required(field, value string) *ValidationBuilder {
	if strings.TrimSpace(value) == "" {
		vb.Field(field, "is required")
	}
	return vb
}

// MaxLength checks that a string field does not exceed maxValue characters
func (vb *ValidationBuilder) MaxLength(field, value string, maxValue int) *ValidationBuilder {
	if len(value) > maxValue {
		vb.Fieldf(field, "must be no more than %d characters", maxValue)
	}
	return vb
}

// Range checks that an integer field lies in [minValue, maxValue]
func (vb *ValidationBuilder) Range(field string, value, minValue, maxValue int) *ValidationBuilder {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
	return vb
}

// Build returns the accumulated error, or nil when every check passed
func (vb *ValidationBuilder) Build() error {
	if vb.err.HasErrors() {
		return vb.err.ToError()
	}
	return nil
}

package dnd5e

import (
	"errors"
	"fmt"
)

// OutOfRangeError is returned by the strict scalar constructors when a value
// falls outside the type's closed range. TooLow and TooHigh report which end
// was violated.
type OutOfRangeError struct {
	// Type is the name of the scalar type, e.g. "ability score".
	Type string
	// Value is the rejected input.
	Value int
	// Min and Max are the inclusive bounds of the type.
	Min int
	Max int
}

// Error implements the error interface
func (e *OutOfRangeError) Error() string {
	if e.Value < e.Min {
		return fmt.Sprintf("%s cannot be less than %d, got %d", e.Type, e.Min, e.Value)
	}
	return fmt.Sprintf("%s cannot be greater than %d, got %d", e.Type, e.Max, e.Value)
}

// TooLow reports whether the value violated the lower bound.
func (e *OutOfRangeError) TooLow() bool {
	return e.Value < e.Min
}

// TooHigh reports whether the value violated the upper bound.
func (e *OutOfRangeError) TooHigh() bool {
	return e.Value > e.Max
}

// MissingFieldError is returned by composite decoding when a required field
// is absent, such as an AbilityScores object without all six slots. Absent
// slots cannot default: the zero value of every bounded scalar is out of
// range.
type MissingFieldError struct {
	// Field is the name of the absent field.
	Field string
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// UnknownNameError is returned by ParseAbility and ParseSkill when the input
// matches no known variant.
type UnknownNameError struct {
	// Kind is what was being parsed, "ability" or "skill".
	Kind string
	// Input is the text that failed to parse.
	Input string
}

// Error implements the error interface
func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Input)
}

// IsOutOfRange reports whether err is an *OutOfRangeError.
func IsOutOfRange(err error) bool {
	var target *OutOfRangeError
	return errors.As(err, &target)
}

// IsUnknownName reports whether err is an *UnknownNameError.
func IsUnknownName(err error) bool {
	var target *UnknownNameError
	return errors.As(err, &target)
}

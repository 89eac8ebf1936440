package errors

import (
	"errors"

	"github.com/KirkDiggler/dnd5e-rules/dnd5e"
)

// FromRules converts a rulebook validation error into a coded error so the
// storage and CLI layers can branch on codes uniformly. Out-of-range scalars
// map to CodeOutOfRange, unknown ability/skill names to CodeInvalidArgument,
// and anything else to CodeInternal.
func FromRules(err error) *Error {
	if err == nil {
		return nil
	}

	var oor *dnd5e.OutOfRangeError
	if errors.As(err, &oor) {
		return WrapWithCode(err, CodeOutOfRange, "value out of range").
			WithMeta("type", oor.Type).
			WithMeta("value", oor.Value)
	}

	var unknown *dnd5e.UnknownNameError
	if errors.As(err, &unknown) {
		return WrapWithCode(err, CodeInvalidArgument, "unknown name").
			WithMeta("kind", unknown.Kind).
			WithMeta("input", unknown.Input)
	}

	return Wrap(err, "rulebook error")
}

// Package errors provides structured error handling for the non-core layers
// of this repository (the creature store and the CLI).
//
// The rulebook package dnd5e exposes its own exported error types so that
// external consumers of the library never depend on internal packages; this
// package adds the code-based taxonomy the storage and command layers branch
// on, plus a bridge from the rulebook errors.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("creature not found")
//	err := errors.InvalidArgumentf("invalid level: %d", level)
//
// Adding metadata:
//
//	err := errors.NotFound("creature not found").
//	    WithMeta("creature_id", creatureID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get creature")
//	}
//
// Bridging rulebook errors:
//
//	if _, err := dnd5e.NewAbilityScore(raw); err != nil {
//	    return errors.FromRules(err) // CodeOutOfRange
//	}
//
// # Error Checking
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// Extracting information:
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	vb.Required("name", input.Name)
//	vb.Range("level", input.Level, 1, 20)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Error Codes
//
// The following error codes are available:
//   - NotFound: Resource not found
//   - InvalidArgument: Invalid input provided
//   - AlreadyExists: Resource already exists
//   - OutOfRange: Value out of valid range
//   - Internal: Internal error
package errors

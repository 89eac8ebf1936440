// Package dnd5e provides the validated value types and lookup tables of the
// D&D 5e rules: ability scores and their modifiers, levels and proficiency
// bonuses, the six abilities, the eighteen skills, and per-creature skill
// proficiency sets.
//
// The package supplies quantities, not rulings. It computes the standard
// arithmetic (score 16 has modifier +3, a level 5 creature has proficiency
// bonus +3) and leaves check resolution, dice, and conditional modifiers to
// the consumer.
//
// Every numeric type is a bounded scalar: it wraps an integer that is
// guaranteed to stay inside its closed range for its whole lifetime. Each
// has a strict constructor that returns an *OutOfRangeError and a clamping
// constructor that saturates:
//
//	score, err := dnd5e.NewAbilityScore(16) // err on 0 or 31
//	score := dnd5e.ClampAbilityScore(47)    // AbilityScoreMax
//
// Values are immutable; to change one, construct a new value.
package dnd5e

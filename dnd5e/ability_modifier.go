package dnd5e

import "strconv"

// AbilityModifier is the -5 to +10 bonus or penalty a creature applies to
// d20 tests using an ability. It is derived from an AbilityScore via
// AbilityScore.Modifier, not authored independently.
type AbilityModifier int8

// Bounds for an ability modifier, matching scores 1 and 30.
const (
	AbilityModifierMin AbilityModifier = -5
	AbilityModifierMax AbilityModifier = 10
)

// NewAbilityModifier validates value and returns it as an AbilityModifier.
// Returns an *OutOfRangeError if value is outside -5 to 10.
func NewAbilityModifier(value int) (AbilityModifier, error) {
	if value < int(AbilityModifierMin) || value > int(AbilityModifierMax) {
		return 0, &OutOfRangeError{
			Type:  "ability modifier",
			Value: value,
			Min:   int(AbilityModifierMin),
			Max:   int(AbilityModifierMax),
		}
	}
	return AbilityModifier(value), nil
}

// ClampAbilityModifier returns the ability modifier nearest to value.
func ClampAbilityModifier(value int) AbilityModifier {
	if value < int(AbilityModifierMin) {
		return AbilityModifierMin
	}
	if value > int(AbilityModifierMax) {
		return AbilityModifierMax
	}
	return AbilityModifier(value)
}

// Value returns the raw modifier.
func (m AbilityModifier) Value() int8 {
	return int8(m)
}

// String returns the modifier in decimal with an explicit sign, e.g. "+3".
func (m AbilityModifier) String() string {
	if m >= 0 {
		return "+" + strconv.Itoa(int(m))
	}
	return strconv.Itoa(int(m))
}

// MarshalJSON encodes the modifier as its bare integer.
func (m AbilityModifier) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(m))), nil
}

// UnmarshalJSON decodes a bare integer, re-validating the range through the
// strict constructor.
func (m *AbilityModifier) UnmarshalJSON(data []byte) error {
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	parsed, err := NewAbilityModifier(value)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

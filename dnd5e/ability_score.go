package dnd5e

import "strconv"

// AbilityScore is the 1-30 magnitude of an Ability.
//
// Note that the zero value is out of range; use AbilityScoreDefault (10) or
// one of the constructors.
type AbilityScore uint8

// Bounds and the conventional starting value for an ability score.
const (
	AbilityScoreMin     AbilityScore = 1
	AbilityScoreMax     AbilityScore = 30
	AbilityScoreDefault AbilityScore = 10
)

// NewAbilityScore validates value and returns it as an AbilityScore.
// Returns an *OutOfRangeError if value is outside 1 to 30.
func NewAbilityScore(value int) (AbilityScore, error) {
	if value < int(AbilityScoreMin) || value > int(AbilityScoreMax) {
		return 0, &OutOfRangeError{
			Type:  "ability score",
			Value: value,
			Min:   int(AbilityScoreMin),
			Max:   int(AbilityScoreMax),
		}
	}
	return AbilityScore(value), nil
}

// ClampAbilityScore returns the ability score nearest to value. It never
// fails: values below 1 become 1 and values above 30 become 30.
func ClampAbilityScore(value int) AbilityScore {
	if value < int(AbilityScoreMin) {
		return AbilityScoreMin
	}
	if value > int(AbilityScoreMax) {
		return AbilityScoreMax
	}
	return AbilityScore(value)
}

// Value returns the raw score.
func (s AbilityScore) Value() uint8 {
	return uint8(s)
}

// Modifier derives the AbilityModifier for this score.
//
// The delta from 10 is halved rounding toward negative infinity, which the
// arithmetic shift guarantees for odd negative deltas: score 9 has delta -1
// and modifier -1, not 0.
func (s AbilityScore) Modifier() AbilityModifier {
	return ClampAbilityModifier((int(s) - 10) >> 1)
}

// String returns the score in decimal.
func (s AbilityScore) String() string {
	return strconv.Itoa(int(s))
}

// MarshalJSON encodes the score as its bare integer.
func (s AbilityScore) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON decodes a bare integer, re-validating the range through the
// strict constructor.
func (s *AbilityScore) UnmarshalJSON(data []byte) error {
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	parsed, err := NewAbilityScore(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

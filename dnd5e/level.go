package dnd5e

import "strconv"

// Level is a creature's overall experience tier, 1 to 20. It determines the
// creature's ProficiencyBonus.
//
// The zero value is out of range; use LevelMin or a constructor.
type Level uint8

// Bounds for a level. New creatures start at LevelMin.
const (
	LevelMin Level = 1
	LevelMax Level = 20
)

// NewLevel validates value and returns it as a Level.
// Returns an *OutOfRangeError if value is outside 1 to 20.
func NewLevel(value int) (Level, error) {
	if value < int(LevelMin) || value > int(LevelMax) {
		return 0, &OutOfRangeError{
			Type:  "level",
			Value: value,
			Min:   int(LevelMin),
			Max:   int(LevelMax),
		}
	}
	return Level(value), nil
}

// ClampLevel returns the level nearest to value.
func ClampLevel(value int) Level {
	if value < int(LevelMin) {
		return LevelMin
	}
	if value > int(LevelMax) {
		return LevelMax
	}
	return Level(value)
}

// Value returns the raw level.
func (l Level) Value() uint8 {
	return uint8(l)
}

// ProficiencyBonus looks up the proficiency bonus for this level.
func (l Level) ProficiencyBonus() ProficiencyBonus {
	return ProficiencyBonusForLevel(int(l))
}

// String returns the level in decimal.
func (l Level) String() string {
	return strconv.Itoa(int(l))
}

// MarshalJSON encodes the level as its bare integer.
func (l Level) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(l))), nil
}

// UnmarshalJSON decodes a bare integer, re-validating the range through the
// strict constructor.
func (l *Level) UnmarshalJSON(data []byte) error {
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	parsed, err := NewLevel(value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

package dnd5e

import "strconv"

// ProficiencyBonus is the 2-9 bonus a creature adds to d20 tests it is
// proficient in. It is derived from Level via Level.ProficiencyBonus.
type ProficiencyBonus uint8

// Bounds for a proficiency bonus. 2-6 covers levels 1-20; 7-9 leaves
// headroom for expanded level caps.
const (
	ProficiencyBonusMin ProficiencyBonus = 2
	ProficiencyBonusMax ProficiencyBonus = 9
)

// NewProficiencyBonus validates value and returns it as a ProficiencyBonus.
// Returns an *OutOfRangeError if value is outside 2 to 9.
func NewProficiencyBonus(value int) (ProficiencyBonus, error) {
	if value < int(ProficiencyBonusMin) || value > int(ProficiencyBonusMax) {
		return 0, &OutOfRangeError{
			Type:  "proficiency bonus",
			Value: value,
			Min:   int(ProficiencyBonusMin),
			Max:   int(ProficiencyBonusMax),
		}
	}
	return ProficiencyBonus(value), nil
}

// ClampProficiencyBonus returns the proficiency bonus nearest to value.
func ClampProficiencyBonus(value int) ProficiencyBonus {
	if value < int(ProficiencyBonusMin) {
		return ProficiencyBonusMin
	}
	if value > int(ProficiencyBonusMax) {
		return ProficiencyBonusMax
	}
	return ProficiencyBonus(value)
}

// ProficiencyBonusForLevel looks up the proficiency bonus for a level. The
// table steps every four levels and extends past LevelMax so that expanded
// level caps keep working; out-of-table input saturates.
func ProficiencyBonusForLevel(level int) ProficiencyBonus {
	var bonus int
	switch {
	case level <= 4:
		bonus = 2
	case level <= 8:
		bonus = 3
	case level <= 12:
		bonus = 4
	case level <= 16:
		bonus = 5
	case level <= 20:
		bonus = 6
	case level <= 24:
		bonus = 7
	case level <= 28:
		bonus = 8
	default:
		bonus = 9
	}
	return ClampProficiencyBonus(bonus)
}

// Value returns the raw bonus.
func (b ProficiencyBonus) Value() uint8 {
	return uint8(b)
}

// String returns the bonus in decimal with an explicit sign, e.g. "+2".
func (b ProficiencyBonus) String() string {
	return "+" + strconv.Itoa(int(b))
}

// MarshalJSON encodes the bonus as its bare integer.
func (b ProficiencyBonus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(b))), nil
}

// UnmarshalJSON decodes a bare integer, re-validating the range through the
// strict constructor.
func (b *ProficiencyBonus) UnmarshalJSON(data []byte) error {
	value, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	parsed, err := NewProficiencyBonus(value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

package dnd5e

import "strconv"

// Ability is one of the six attributes that measure the physical and mental
// characteristics of a creature.
//
// The zero value is AbilityStrength. Variant ordinals are stable and fit in
// one byte, so they are safe to use as compact discriminants in external
// encodings.
type Ability uint8

// The six abilities, in rulebook order.
const (
	AbilityStrength Ability = iota
	AbilityDexterity
	AbilityConstitution
	AbilityIntelligence
	AbilityWisdom
	AbilityCharisma
)

// NumAbilities is the number of Ability variants.
const NumAbilities = 6

var abilityNames = [NumAbilities]string{
	"Strength",
	"Dexterity",
	"Constitution",
	"Intelligence",
	"Wisdom",
	"Charisma",
}

var abilityAbbrs = [NumAbilities]string{
	"STR",
	"DEX",
	"CON",
	"INT",
	"WIS",
	"CHA",
}

// abilitySkills is the forward half of the ability/skill association. The
// inverse (Skill.Ability) lives in skill.go; TestSkillAbilityConsistency
// keeps the two tables honest.
var abilitySkills = [NumAbilities][]Skill{
	AbilityStrength:     {SkillAthletics},
	AbilityDexterity:    {SkillAcrobatics, SkillSleightOfHand, SkillStealth},
	AbilityConstitution: {},
	AbilityIntelligence: {SkillArcana, SkillHistory, SkillInvestigation, SkillNature, SkillReligion},
	AbilityWisdom:       {SkillAnimalHandling, SkillInsight, SkillMedicine, SkillPerception, SkillSurvival},
	AbilityCharisma:     {SkillDeception, SkillIntimidation, SkillPerformance, SkillPersuasion},
}

// Abilities returns all six abilities in declaration order.
func Abilities() []Ability {
	return []Ability{
		AbilityStrength,
		AbilityDexterity,
		AbilityConstitution,
		AbilityIntelligence,
		AbilityWisdom,
		AbilityCharisma,
	}
}

// Name returns the full title-case name of the ability, e.g. "Strength".
func (a Ability) Name() string {
	return abilityNames[a]
}

// Abbr returns the three-letter upper-case abbreviation, e.g. "STR".
func (a Ability) Abbr() string {
	return abilityAbbrs[a]
}

// Skills returns the skills governed by this ability, in skill declaration
// order. Constitution governs none and returns an empty slice.
func (a Ability) Skills() []Skill {
	skills := abilitySkills[a]
	out := make([]Skill, len(skills))
	copy(out, skills)
	return out
}

// String returns the full name of the ability.
func (a Ability) String() string {
	return a.Name()
}

// ParseAbility parses an ability from its full name or its three-letter
// abbreviation. Matching is case-sensitive: "Strength" and "STR" parse,
// "strength" does not. Returns an *UnknownNameError on no match.
func ParseAbility(s string) (Ability, error) {
	for _, a := range Abilities() {
		if s == a.Name() || s == a.Abbr() {
			return a, nil
		}
	}
	return 0, &UnknownNameError{Kind: "ability", Input: s}
}

// MarshalText implements encoding.TextMarshaler, encoding the ability as its
// full name. This also makes Ability usable as a JSON object key.
func (a Ability) MarshalText() ([]byte, error) {
	if a >= NumAbilities {
		return nil, &UnknownNameError{Kind: "ability", Input: a.debugString()}
	}
	return []byte(a.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are
// rejected with an *UnknownNameError.
func (a *Ability) UnmarshalText(text []byte) error {
	parsed, err := ParseAbility(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Ability) debugString() string {
	return "Ability(" + strconv.Itoa(int(a)) + ")"
}

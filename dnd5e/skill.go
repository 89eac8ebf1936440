package dnd5e

import "strconv"

// Skill is one of the eighteen areas of expertise a creature can be
// proficient in. Each skill is permanently tied to exactly one Ability.
//
// The zero value is SkillAcrobatics. Variant ordinals are stable and fit in
// one byte.
type Skill uint8

// The eighteen skills, in rulebook order.
const (
	SkillAcrobatics Skill = iota
	SkillAnimalHandling
	SkillArcana
	SkillAthletics
	SkillDeception
	SkillHistory
	SkillInsight
	SkillIntimidation
	SkillInvestigation
	SkillMedicine
	SkillNature
	SkillPerception
	SkillPerformance
	SkillPersuasion
	SkillReligion
	SkillSleightOfHand
	SkillStealth
	SkillSurvival
)

// NumSkills is the number of Skill variants.
const NumSkills = 18

var skillNames = [NumSkills]string{
	"Acrobatics",
	"Animal Handling",
	"Arcana",
	"Athletics",
	"Deception",
	"History",
	"Insight",
	"Intimidation",
	"Investigation",
	"Medicine",
	"Nature",
	"Perception",
	"Performance",
	"Persuasion",
	"Religion",
	"Sleight of Hand",
	"Stealth",
	"Survival",
}

// skillAbilities is the inverse half of the association in ability.go.
var skillAbilities = [NumSkills]Ability{
	SkillAcrobatics:     AbilityDexterity,
	SkillAnimalHandling: AbilityWisdom,
	SkillArcana:         AbilityIntelligence,
	SkillAthletics:      AbilityStrength,
	SkillDeception:      AbilityCharisma,
	SkillHistory:        AbilityIntelligence,
	SkillInsight:        AbilityWisdom,
	SkillIntimidation:   AbilityCharisma,
	SkillInvestigation:  AbilityIntelligence,
	SkillMedicine:       AbilityWisdom,
	SkillNature:         AbilityIntelligence,
	SkillPerception:     AbilityWisdom,
	SkillPerformance:    AbilityCharisma,
	SkillPersuasion:     AbilityCharisma,
	SkillReligion:       AbilityIntelligence,
	SkillSleightOfHand:  AbilityDexterity,
	SkillStealth:        AbilityDexterity,
	SkillSurvival:       AbilityWisdom,
}

// Skills returns all eighteen skills in declaration order.
func Skills() []Skill {
	out := make([]Skill, NumSkills)
	for i := range out {
		out[i] = Skill(i)
	}
	return out
}

// Name returns the display name of the skill, e.g. "Sleight of Hand".
func (s Skill) Name() string {
	return skillNames[s]
}

// Ability returns the ability that governs this skill.
func (s Skill) Ability() Ability {
	return skillAbilities[s]
}

// String returns the display name of the skill.
func (s Skill) String() string {
	return s.Name()
}

// ParseSkill parses a skill from its exact display name. There are no skill
// abbreviations and matching is case-sensitive: "Sleight of Hand" parses,
// "sleight of hand" does not. Returns an *UnknownNameError on no match.
func ParseSkill(s string) (Skill, error) {
	for i, name := range skillNames {
		if s == name {
			return Skill(i), nil
		}
	}
	return 0, &UnknownNameError{Kind: "skill", Input: s}
}

// MarshalText implements encoding.TextMarshaler, encoding the skill as its
// display name.
func (s Skill) MarshalText() ([]byte, error) {
	if s >= NumSkills {
		return nil, &UnknownNameError{Kind: "skill", Input: "Skill(" + strconv.Itoa(int(s)) + ")"}
	}
	return []byte(s.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are
// rejected with an *UnknownNameError.
func (s *Skill) UnmarshalText(text []byte) error {
	parsed, err := ParseSkill(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

package dnd5e

import "encoding/json"

// AbilityScores holds one AbilityScore for each of the six abilities.
//
// The zero value has every slot at zero, which is out of range; use
// NewAbilityScores or UniformAbilityScores.
type AbilityScores struct {
	Strength     AbilityScore `json:"Strength"`
	Dexterity    AbilityScore `json:"Dexterity"`
	Constitution AbilityScore `json:"Constitution"`
	Intelligence AbilityScore `json:"Intelligence"`
	Wisdom       AbilityScore `json:"Wisdom"`
	Charisma     AbilityScore `json:"Charisma"`
}

// AbilityScoreEntry pairs an ability with its score.
type AbilityScoreEntry struct {
	Ability Ability
	Score   AbilityScore
}

// NewAbilityScores returns scores with every slot at AbilityScoreDefault.
func NewAbilityScores() AbilityScores {
	return UniformAbilityScores(AbilityScoreDefault)
}

// UniformAbilityScores returns scores with every slot set to score.
func UniformAbilityScores(score AbilityScore) AbilityScores {
	return AbilityScores{
		Strength:     score,
		Dexterity:    score,
		Constitution: score,
		Intelligence: score,
		Wisdom:       score,
		Charisma:     score,
	}
}

// Get returns the score stored for the given ability.
func (a *AbilityScores) Get(ability Ability) AbilityScore {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set replaces the score stored for the given ability.
func (a *AbilityScores) Set(ability Ability, score AbilityScore) {
	switch ability {
	case AbilityStrength:
		a.Strength = score
	case AbilityDexterity:
		a.Dexterity = score
	case AbilityConstitution:
		a.Constitution = score
	case AbilityIntelligence:
		a.Intelligence = score
	case AbilityWisdom:
		a.Wisdom = score
	case AbilityCharisma:
		a.Charisma = score
	}
}

// Modifier derives the ability modifier for the given ability's score.
func (a *AbilityScores) Modifier(ability Ability) AbilityModifier {
	return a.Get(ability).Modifier()
}

// abilityScoresJSON mirrors AbilityScores with pointer slots so decoding
// can tell an absent field from a present one.
type abilityScoresJSON struct {
	Strength     *AbilityScore `json:"Strength"`
	Dexterity    *AbilityScore `json:"Dexterity"`
	Constitution *AbilityScore `json:"Constitution"`
	Intelligence *AbilityScore `json:"Intelligence"`
	Wisdom       *AbilityScore `json:"Wisdom"`
	Charisma     *AbilityScore `json:"Charisma"`
}

// UnmarshalJSON decodes a named-slot object. All six slots must be present;
// an absent slot fails with a *MissingFieldError rather than silently
// holding the out-of-range zero value. Each present slot re-validates its
// range through AbilityScore's decode. On error the receiver is unchanged.
func (a *AbilityScores) UnmarshalJSON(data []byte) error {
	var in abilityScoresJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	slots := []struct {
		name  string
		value *AbilityScore
	}{
		{"Strength", in.Strength},
		{"Dexterity", in.Dexterity},
		{"Constitution", in.Constitution},
		{"Intelligence", in.Intelligence},
		{"Wisdom", in.Wisdom},
		{"Charisma", in.Charisma},
	}
	for _, slot := range slots {
		if slot.value == nil {
			return &MissingFieldError{Field: slot.name}
		}
	}

	*a = AbilityScores{
		Strength:     *in.Strength,
		Dexterity:    *in.Dexterity,
		Constitution: *in.Constitution,
		Intelligence: *in.Intelligence,
		Wisdom:       *in.Wisdom,
		Charisma:     *in.Charisma,
	}
	return nil
}

// All returns every (ability, score) pair in ability declaration order.
func (a *AbilityScores) All() []AbilityScoreEntry {
	entries := make([]AbilityScoreEntry, 0, NumAbilities)
	for _, ability := range Abilities() {
		entries = append(entries, AbilityScoreEntry{Ability: ability, Score: a.Get(ability)})
	}
	return entries
}

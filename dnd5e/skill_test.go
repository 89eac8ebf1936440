package dnd5e_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd5e-rules/dnd5e"
)

func TestSkills(t *testing.T) {
	all := dnd5e.Skills()

	assert.Len(t, all, 18)
	assert.Equal(t, dnd5e.SkillAcrobatics, all[0])
	assert.Equal(t, dnd5e.SkillSurvival, all[17])
}

func TestSkill_Name(t *testing.T) {
	tests := []struct {
		skill dnd5e.Skill
		name  string
	}{
		{skill: dnd5e.SkillAcrobatics, name: "Acrobatics"},
		{skill: dnd5e.SkillAnimalHandling, name: "Animal Handling"},
		{skill: dnd5e.SkillSleightOfHand, name: "Sleight of Hand"},
		{skill: dnd5e.SkillSurvival, name: "Survival"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.skill.Name())
		assert.Equal(t, tt.name, tt.skill.String())
	}

	for _, skill := range dnd5e.Skills() {
		assert.NotEmpty(t, skill.Name())
	}
}

func TestSkill_Ability(t *testing.T) {
	tests := []struct {
		skill   dnd5e.Skill
		ability dnd5e.Ability
	}{
		{skill: dnd5e.SkillAthletics, ability: dnd5e.AbilityStrength},
		{skill: dnd5e.SkillAcrobatics, ability: dnd5e.AbilityDexterity},
		{skill: dnd5e.SkillArcana, ability: dnd5e.AbilityIntelligence},
		{skill: dnd5e.SkillPerception, ability: dnd5e.AbilityWisdom},
		{skill: dnd5e.SkillPersuasion, ability: dnd5e.AbilityCharisma},
	}

	for _, tt := range tests {
		t.Run(tt.skill.Name(), func(t *testing.T) {
			assert.Equal(t, tt.ability, tt.skill.Ability())
		})
	}
}

// TestSkillAbilityConsistency checks both halves of the static association
// against each other: every skill must appear in its governing ability's
// skill list.
func TestSkillAbilityConsistency(t *testing.T) {
	for _, skill := range dnd5e.Skills() {
		assert.Contains(t, skill.Ability().Skills(), skill,
			"%s missing from %s skill list", skill.Name(), skill.Ability().Name())
	}
}

func TestParseSkill(t *testing.T) {
	t.Run("exact names", func(t *testing.T) {
		for _, skill := range dnd5e.Skills() {
			got, err := dnd5e.ParseSkill(skill.Name())
			require.NoError(t, err)
			assert.Equal(t, skill, got)
		}
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		got, err := dnd5e.ParseSkill("Sleight of Hand")
		require.NoError(t, err)
		assert.Equal(t, dnd5e.SkillSleightOfHand, got)

		_, err = dnd5e.ParseSkill("sleight of hand")
		assert.Error(t, err)
	})

	t.Run("no abbreviations", func(t *testing.T) {
		_, err := dnd5e.ParseSkill("ACR")
		assert.Error(t, err)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := dnd5e.ParseSkill("Basket Weaving")
		require.Error(t, err)
		assert.True(t, dnd5e.IsUnknownName(err))
		assert.EqualError(t, err, `unknown skill "Basket Weaving"`)
	})
}

func TestSkill_JSON(t *testing.T) {
	t.Run("encodes as name", func(t *testing.T) {
		data, err := json.Marshal(dnd5e.SkillSleightOfHand)
		require.NoError(t, err)
		assert.Equal(t, `"Sleight of Hand"`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, skill := range dnd5e.Skills() {
			data, err := json.Marshal(skill)
			require.NoError(t, err)

			var got dnd5e.Skill
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, skill, got)
		}
	})

	t.Run("decode rejects unknown names", func(t *testing.T) {
		var got dnd5e.Skill
		err := json.Unmarshal([]byte(`"Lockpicking"`), &got)
		require.Error(t, err)
		assert.True(t, dnd5e.IsUnknownName(err))
	})
}

package dnd5e_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd5e-rules/dnd5e"
)

func TestNewAbilityScores(t *testing.T) {
	scores := dnd5e.NewAbilityScores()

	for _, ability := range dnd5e.Abilities() {
		assert.Equal(t, dnd5e.AbilityScoreDefault, scores.Get(ability))
	}
	assert.Equal(t, dnd5e.UniformAbilityScores(dnd5e.AbilityScoreDefault), scores)
}

func TestUniformAbilityScores(t *testing.T) {
	score, err := dnd5e.NewAbilityScore(12)
	require.NoError(t, err)

	scores := dnd5e.UniformAbilityScores(score)
	for _, ability := range dnd5e.Abilities() {
		assert.Equal(t, score, scores.Get(ability))
	}
}

func TestAbilityScores_GetSet(t *testing.T) {
	scores := dnd5e.NewAbilityScores()

	scores.Set(dnd5e.AbilityStrength, dnd5e.ClampAbilityScore(18))
	scores.Set(dnd5e.AbilityDexterity, dnd5e.ClampAbilityScore(16))
	scores.Set(dnd5e.AbilityCharisma, dnd5e.ClampAbilityScore(8))

	assert.Equal(t, dnd5e.AbilityScore(18), scores.Get(dnd5e.AbilityStrength))
	assert.Equal(t, dnd5e.AbilityScore(18), scores.Strength)
	assert.Equal(t, dnd5e.AbilityScore(16), scores.Get(dnd5e.AbilityDexterity))
	assert.Equal(t, dnd5e.AbilityScore(8), scores.Get(dnd5e.AbilityCharisma))

	// Untouched slots keep the default.
	assert.Equal(t, dnd5e.AbilityScoreDefault, scores.Get(dnd5e.AbilityWisdom))
}

func TestAbilityScores_Modifier(t *testing.T) {
	scores := dnd5e.NewAbilityScores()
	scores.Set(dnd5e.AbilityDexterity, dnd5e.ClampAbilityScore(14))

	assert.Equal(t, int8(2), scores.Modifier(dnd5e.AbilityDexterity).Value())
	assert.Equal(t, int8(0), scores.Modifier(dnd5e.AbilityStrength).Value())
}

func TestAbilityScores_All(t *testing.T) {
	scores := dnd5e.AbilityScores{
		Strength:     dnd5e.ClampAbilityScore(12),
		Dexterity:    dnd5e.ClampAbilityScore(14),
		Constitution: dnd5e.ClampAbilityScore(13),
		Intelligence: dnd5e.ClampAbilityScore(15),
		Wisdom:       dnd5e.ClampAbilityScore(10),
		Charisma:     dnd5e.ClampAbilityScore(8),
	}

	want := []dnd5e.AbilityScoreEntry{
		{Ability: dnd5e.AbilityStrength, Score: 12},
		{Ability: dnd5e.AbilityDexterity, Score: 14},
		{Ability: dnd5e.AbilityConstitution, Score: 13},
		{Ability: dnd5e.AbilityIntelligence, Score: 15},
		{Ability: dnd5e.AbilityWisdom, Score: 10},
		{Ability: dnd5e.AbilityCharisma, Score: 8},
	}
	assert.Equal(t, want, scores.All())

	// Restartable: a second pass yields the same sequence.
	assert.Equal(t, want, scores.All())
}

func TestAbilityScores_JSON(t *testing.T) {
	scores := dnd5e.NewAbilityScores()
	scores.Set(dnd5e.AbilityStrength, dnd5e.ClampAbilityScore(16))

	t.Run("encodes as named object", func(t *testing.T) {
		data, err := json.Marshal(scores)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"Strength": 16,
			"Dexterity": 10,
			"Constitution": 10,
			"Intelligence": 10,
			"Wisdom": 10,
			"Charisma": 10
		}`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := json.Marshal(scores)
		require.NoError(t, err)

		var got dnd5e.AbilityScores
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, scores, got)
	})

	t.Run("decode re-validates each slot", func(t *testing.T) {
		var got dnd5e.AbilityScores
		err := json.Unmarshal([]byte(`{"Strength": 99}`), &got)
		require.Error(t, err)
		assert.True(t, dnd5e.IsOutOfRange(err))
	})

	t.Run("decode rejects an empty object", func(t *testing.T) {
		var got dnd5e.AbilityScores
		err := json.Unmarshal([]byte(`{}`), &got)
		require.Error(t, err)

		var missing *dnd5e.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Strength", missing.Field)
	})

	t.Run("decode names the absent slot", func(t *testing.T) {
		var got dnd5e.AbilityScores
		err := json.Unmarshal([]byte(`{
			"Strength": 16,
			"Dexterity": 10,
			"Constitution": 10,
			"Intelligence": 10,
			"Charisma": 10
		}`), &got)
		require.Error(t, err)

		var missing *dnd5e.MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "Wisdom", missing.Field)
	})

	t.Run("receiver is unchanged on a failed decode", func(t *testing.T) {
		got := dnd5e.NewAbilityScores()
		err := json.Unmarshal([]byte(`{"Strength": 16}`), &got)
		require.Error(t, err)
		assert.Equal(t, dnd5e.NewAbilityScores(), got)
	})
}

// Package entities defines the storage records persisted by the repositories.
package entities

import (
	"time"

	"github.com/KirkDiggler/dnd5e-rules/dnd5e"
	"github.com/KirkDiggler/dnd5e-rules/internal/errors"
)

// Creature is a stored stat block: a named creature with a level, ability
// scores, and skill proficiencies. The rules types carry their own bounds,
// so a Creature that unmarshals cleanly is already rules-legal.
type Creature struct {
	ID      string                   `json:"id"`
	OwnerID string                   `json:"owner_id"`
	Name    string                   `json:"name"`
	Level   dnd5e.Level              `json:"level"`
	Scores  dnd5e.AbilityScores      `json:"scores"`
	Skills  dnd5e.SkillProficiencies `json:"skills"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks both the identity fields and the rules fields. The rules
// types guarantee their ranges once constructed, but a zero-valued Level or
// score slot (an unset field, or a decode that skipped it) is below range,
// so those are re-checked here before a record is accepted.
func (c *Creature) Validate() error {
	vb := errors.NewValidationBuilder()

	vb.Required("name", c.Name)
	vb.MaxLength("name", c.Name, 100)
	vb.Required("owner_id", c.OwnerID)

	vb.Range("level", int(c.Level.Value()), int(dnd5e.LevelMin), int(dnd5e.LevelMax))
	for _, entry := range c.Scores.All() {
		vb.Range(entry.Ability.Name(), int(entry.Score.Value()),
			int(dnd5e.AbilityScoreMin), int(dnd5e.AbilityScoreMax))
	}

	return vb.Build()
}

// ProficiencyBonus is the creature's bonus at its current level.
func (c *Creature) ProficiencyBonus() dnd5e.ProficiencyBonus {
	return c.Level.ProficiencyBonus()
}

// SkillCheckBonus is the creature's total modifier to a check with the
// given skill: the governing ability's modifier, plus the proficiency
// bonus once for proficiency or twice for expertise.
func (c *Creature) SkillCheckBonus(skill dnd5e.Skill) int {
	bonus := int(c.Scores.Modifier(skill.Ability()).Value())

	switch c.Skills.Proficiency(skill) {
	case dnd5e.ProficiencyProficient:
		bonus += int(c.ProficiencyBonus().Value())
	case dnd5e.ProficiencyExpertise:
		bonus += 2 * int(c.ProficiencyBonus().Value())
	}

	return bonus
}

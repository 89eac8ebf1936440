package dnd5e

import "encoding/json"

// Proficiency is the tier of competence a creature has in a skill.
type Proficiency uint8

// Proficiency tiers. Expertise supersedes Proficient; a skill is in exactly
// one tier at a time.
const (
	ProficiencyNone Proficiency = iota
	ProficiencyProficient
	ProficiencyExpertise
)

// String returns the tier name.
func (p Proficiency) String() string {
	switch p {
	case ProficiencyProficient:
		return "Proficient"
	case ProficiencyExpertise:
		return "Expertise"
	default:
		return "None"
	}
}

// skillSet is a bitmask over Skill ordinals. 18 skills fit comfortably in
// 32 bits.
type skillSet uint32

func (s skillSet) contains(skill Skill) bool {
	return s&(1<<skill) != 0
}

func (s *skillSet) insert(skill Skill) {
	*s |= 1 << skill
}

func (s *skillSet) remove(skill Skill) {
	*s &^= 1 << skill
}

// SkillProficiencies tracks which skills a creature is proficient in and
// which it has expertise in. The two underlying sets are always disjoint:
// granting one tier removes the other.
//
// The zero value is an empty set and ready to use.
type SkillProficiencies struct {
	proficient skillSet
	expertise  skillSet
}

// SkillProficiencyEntry pairs a skill with its proficiency tier.
type SkillProficiencyEntry struct {
	Skill       Skill
	Proficiency Proficiency
}

// NewSkillProficiencies returns an empty proficiency set.
func NewSkillProficiencies() SkillProficiencies {
	return SkillProficiencies{}
}

// WithProficiencies returns a set built by applying SetProficiency for each
// entry in order; a later entry for the same skill overrides an earlier one.
func WithProficiencies(entries []SkillProficiencyEntry) SkillProficiencies {
	var p SkillProficiencies
	for _, e := range entries {
		p.SetProficiency(e.Skill, e.Proficiency)
	}
	return p
}

// IsProficient reports whether the skill is in the Proficient tier. It is
// false when the skill has Expertise.
func (p *SkillProficiencies) IsProficient(skill Skill) bool {
	return p.proficient.contains(skill)
}

// HasExpertise reports whether the skill is in the Expertise tier.
func (p *SkillProficiencies) HasExpertise(skill Skill) bool {
	return p.expertise.contains(skill)
}

// Proficiency returns the tier for the skill. Expertise is checked first;
// the sets are disjoint, so at most one can hold the skill.
func (p *SkillProficiencies) Proficiency(skill Skill) Proficiency {
	if p.HasExpertise(skill) {
		return ProficiencyExpertise
	}
	if p.IsProficient(skill) {
		return ProficiencyProficient
	}
	return ProficiencyNone
}

// SetProficiency puts the skill in the given tier. ProficiencyNone clears it.
func (p *SkillProficiencies) SetProficiency(skill Skill, tier Proficiency) {
	switch tier {
	case ProficiencyProficient:
		p.SetProficient(skill)
	case ProficiencyExpertise:
		p.SetExpertise(skill)
	default:
		p.ClearProficiency(skill)
	}
}

// SetProficient puts the skill in the Proficient tier, removing any
// existing Expertise.
func (p *SkillProficiencies) SetProficient(skill Skill) {
	p.proficient.insert(skill)
	p.expertise.remove(skill)
}

// SetExpertise puts the skill in the Expertise tier, removing any existing
// Proficient entry.
func (p *SkillProficiencies) SetExpertise(skill Skill) {
	p.expertise.insert(skill)
	p.proficient.remove(skill)
}

// ClearProficiency returns the skill to the None tier.
func (p *SkillProficiencies) ClearProficiency(skill Skill) {
	p.proficient.remove(skill)
	p.expertise.remove(skill)
}

// ClearAll returns every skill to the None tier.
func (p *SkillProficiencies) ClearAll() {
	p.proficient = 0
	p.expertise = 0
}

// All returns every skill not in the None tier, in skill declaration order.
func (p *SkillProficiencies) All() []SkillProficiencyEntry {
	var entries []SkillProficiencyEntry
	for _, skill := range Skills() {
		if tier := p.Proficiency(skill); tier != ProficiencyNone {
			entries = append(entries, SkillProficiencyEntry{Skill: skill, Proficiency: tier})
		}
	}
	return entries
}

// skillProficienciesJSON is the wire shape: two skill-name arrays.
type skillProficienciesJSON struct {
	Proficient []Skill `json:"proficient"`
	Expertise  []Skill `json:"expertise"`
}

// MarshalJSON encodes the set as proficient and expertise skill-name arrays.
func (p SkillProficiencies) MarshalJSON() ([]byte, error) {
	out := skillProficienciesJSON{
		Proficient: []Skill{},
		Expertise:  []Skill{},
	}
	for _, skill := range Skills() {
		switch {
		case p.expertise.contains(skill):
			out.Expertise = append(out.Expertise, skill)
		case p.proficient.contains(skill):
			out.Proficient = append(out.Proficient, skill)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the set through the tier operations, so the
// disjointness invariant is re-established even for malformed input that
// lists a skill in both arrays. Unknown skill names are rejected.
func (p *SkillProficiencies) UnmarshalJSON(data []byte) error {
	var in skillProficienciesJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	var rebuilt SkillProficiencies
	for _, skill := range in.Proficient {
		rebuilt.SetProficient(skill)
	}
	for _, skill := range in.Expertise {
		rebuilt.SetExpertise(skill)
	}
	*p = rebuilt
	return nil
}

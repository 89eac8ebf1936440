package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd5e-rules/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderCollectsAllFailures() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("level", "must be between %d and %d", 1, 20)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().Contains(err.Error(), "level: must be between 1 and 20")
	s.Assert().NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestBuilderNoFailures() {
	vb := errors.NewValidationBuilder()
	vb.Required("name", "Sneaky Pete")
	vb.Range("level", 5, 1, 20)

	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Sneaky Pete", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Sneaky Pete  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			vb.Required("name", tc.value)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestMaxLength() {
	vb := errors.NewValidationBuilder()
	vb.MaxLength("name", "this is a very long creature name", 20)
	vb.MaxLength("owner_id", "owner_1", 64)

	err := vb.Build()
	s.Require().NotNil(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(fields["name"][0], "must be no more than 20 characters")
	s.Assert().NotContains(fields, "owner_id")
}

func (s *ValidationTestSuite) TestRange() {
	vb := errors.NewValidationBuilder()
	vb.Range("level", 25, 1, 20)
	vb.Range("Strength", 15, 1, 30)
	vb.Range("Dexterity", 0, 1, 30)

	err := vb.Build()
	s.Require().NotNil(err)
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(fields["level"][0], "must be between 1 and 20")
	s.Assert().Contains(fields["Dexterity"][0], "must be between 1 and 30")
	s.Assert().NotContains(fields, "Strength")
}

func (s *ValidationTestSuite) TestCreatureShapedValidation() {
	// The same checks Creature.Validate runs: identity fields plus the
	// level and score ranges.
	vb := errors.NewValidationBuilder()
	vb.Required("name", "")
	vb.Required("owner_id", "owner_1")
	vb.Range("level", 0, 1, 20)
	for field, score := range map[string]int{"Strength": 33, "Dexterity": 15} {
		vb.Range(field, score, 1, 30)
	}

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(fields, "name")
	s.Assert().Contains(fields, "level")
	s.Assert().Contains(fields, "Strength")
	s.Assert().NotContains(fields, "owner_id")
	s.Assert().NotContains(fields, "Dexterity")
}

package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("slot", "is invalid")
	ve.AddFieldErrorf("max_hp", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: max_hp: must be at least 1; name: is required; slot: is invalid",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("success_rate", "must be between %d and %d", 0, 100).
		RequiredField("kind").
		InvalidField("slot", "not a valid slot")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Banana", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Big Hammer  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("gold", -1, 0, vb)
	errors.ValidateMin("amount", 3, 1, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["gold"][0], "must be at least 0")
	s.Assert().NotContains(validationErrors, "amount")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("success_rate", 120, 0, 100, vb)
	errors.ValidateRange("odds", 15, 1, 100, vb)
	errors.ValidateRange("strength", -1, 0, 1000, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["success_rate"][0], "must be between 0 and 100")
	s.Assert().Contains(validationErrors["strength"][0], "must be between 0 and 1000")
	s.Assert().NotContains(validationErrors, "odds")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	slots := []string{"weapon", "shield", "helmet", "torso", "legs"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("slot", "ring", slots, vb)
	errors.ValidateEnum("other_slot", "helmet", slots, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["slot"][0], "must be one of: weapon, shield, helmet, torso, legs")
	s.Assert().NotContains(validationErrors, "other_slot")
}

package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/wftrack/loadout-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuilderEmpty() {
	err := errors.NewValidationBuilder().Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestBuilderRequiredFields() {
	err := errors.NewValidationBuilder().
		RequiredField("Repository").
		RequiredField("IDGenerator").
		Build()

	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Repository")
	s.Assert().Contains(err.Error(), "IDGenerator")
}

func (s *ValidationTestSuite) TestValidationErrorMeta() {
	ve := errors.NewValidationError()
	ve.AddFieldError("item", "unknown item")
	ve.AddFieldError("item", "name is blank")

	err := ve.ToError()
	s.Require().NotNil(err)

	fields, ok := err.Meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Assert().Len(fields["item"], 2)
}

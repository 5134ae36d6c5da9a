package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/jp-mud/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Client").Fieldf("FallbackThreshold", "must be greater than zero, got %d", 0)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"INVALID_ARGUMENT: validation failed: Client: is required; FallbackThreshold: must be greater than zero, got 0",
		err.Error())

	fields := errors.ValidationFields(err)
	s.Assert().Equal([]string{"is required"}, fields["Client"])
	s.Assert().Len(fields, 2)
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", "  ", vb)
	errors.ValidatePositive("Threshold", 0, vb)
	errors.ValidatePositive("PoolSize", 4, vb)

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "BaseURL: is required")
	s.Assert().Contains(err.Error(), "Threshold: must be greater than zero")
	s.Assert().NotContains(err.Error(), "PoolSize")
}

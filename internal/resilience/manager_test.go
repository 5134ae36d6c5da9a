package resilience_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/jp-mud/internal/errors"
	"github.com/KirkDiggler/jp-mud/internal/resilience"
)

type ManagerTestSuite struct {
	suite.Suite
	manager *resilience.Manager
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}

func (s *ManagerTestSuite) SetupTest() {
	m, err := resilience.NewManager(nil)
	s.Require().NoError(err)
	s.manager = m
}

func (s *ManagerTestSuite) TestDefaults() {
	s.Equal(resilience.DefaultThreshold, s.manager.Threshold())
	s.Equal(0, s.manager.Failures())
	s.False(s.manager.ShouldFallback())
}

func (s *ManagerTestSuite) TestNegativeThresholdRejected() {
	_, err := resilience.NewManager(&resilience.Config{Threshold: -1})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ManagerTestSuite) TestCountsOnlyConnectivityFailures() {
	s.True(s.manager.RecordFailure(errors.Unavailable("connection refused")))
	s.True(s.manager.RecordFailure(errors.New(errors.CodeDeadlineExceeded, "timeout")))
	s.False(s.manager.RecordFailure(errors.Internal("model returned garbage")))
	s.False(s.manager.RecordFailure(errors.InvalidArgument("bad input")))

	s.Equal(2, s.manager.Failures())
	s.False(s.manager.ShouldFallback())
}

func (s *ManagerTestSuite) TestFallbackAtThreshold() {
	for i := 0; i < resilience.DefaultThreshold; i++ {
		s.manager.RecordFailure(errors.Unavailable("down"))
	}
	s.True(s.manager.ShouldFallback())

	s.manager.RecordSuccess()
	s.Equal(0, s.manager.Failures())
	s.False(s.manager.ShouldFallback())
}

func (s *ManagerTestSuite) TestDetail() {
	s.Equal("Check your internet connection and try again.", s.manager.Detail())

	s.manager.RecordFailure(errors.Unavailable("down"))
	s.manager.RecordFailure(errors.Unavailable("down"))
	s.Equal("Failed after 2 attempts. Server may be down or unreachable.", s.manager.Detail())
}

func (s *ManagerTestSuite) TestCustomThreshold() {
	m, err := resilience.NewManager(&resilience.Config{Threshold: 1})
	s.Require().NoError(err)

	m.RecordFailure(errors.Unavailable("down"))
	s.True(m.ShouldFallback())
}

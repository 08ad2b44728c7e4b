package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anthonyvouin/icoproject/internal/dependencies/mocks"
	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/storage/memory"
	"github.com/anthonyvouin/icoproject/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestStartCreatesRecord() {
	s.random.QueueString("abc123")

	session, err := s.service.Start(s.ctx, "user-1")
	s.Require().NoError(err)

	s.Equal(model.SessionID("gs_abc123"), session.ID)
	s.Equal(model.UserID("user-1"), session.UserID)
	s.Equal(s.clock.CurrentTime, session.StartedAt)
	s.Nil(session.EndedAt)

	stored, err := s.storage.GetGameSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, stored.ID)
}

func (s *ServiceSuite) TestEndStampsRecord() {
	s.random.QueueString("abc123")
	session, _ := s.service.Start(s.ctx, "user-1")

	s.clock.Advance(30 * time.Minute)

	err := s.service.End(s.ctx, session.ID)
	s.Require().NoError(err)

	stored, err := s.storage.GetGameSession(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.EndedAt)
	s.Equal(s.clock.CurrentTime, *stored.EndedAt)
}

func (s *ServiceSuite) TestEndUnknownSession() {
	err := s.service.End(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestGet() {
	s.random.QueueString("abc123")
	session, _ := s.service.Start(s.ctx, "user-1")

	retrieved, err := s.service.Get(s.ctx, session.ID)
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)

	_, err = s.service.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/storage/memory"
	"github.com/anthonyvouin/icoproject/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestGetReturnsDefaultsWhenUnset() {
	settings := s.service.Get(s.ctx)
	s.Equal(model.DefaultSettings(), settings)
	s.Equal(10, settings.RoundsToWin)
	s.Equal(10, settings.TimerSeconds)
}

func (s *ServiceSuite) TestGetReturnsStoredSettings() {
	stored := model.Settings{RoundsToWin: 5, TimerSeconds: 20}
	_ = s.storage.SaveSettings(s.ctx, stored)

	s.Equal(stored, s.service.Get(s.ctx))
}

func (s *ServiceSuite) TestGetFallsBackOnStorageFailure() {
	failing := &failingStorage{Storage: s.storage}
	service := New(failing, testutil.NopLogger())

	s.Equal(model.DefaultSettings(), service.Get(s.ctx))
}

func (s *ServiceSuite) TestUpdate() {
	err := s.service.Update(s.ctx, model.Settings{RoundsToWin: 3, TimerSeconds: 30})
	s.Require().NoError(err)

	s.Equal(model.Settings{RoundsToWin: 3, TimerSeconds: 30}, s.service.Get(s.ctx))
}

func (s *ServiceSuite) TestUpdateRejectsNonPositiveValues() {
	err := s.service.Update(s.ctx, model.Settings{RoundsToWin: 0, TimerSeconds: 10})
	s.ErrorIs(err, ErrInvalidSettings)

	err = s.service.Update(s.ctx, model.Settings{RoundsToWin: 10, TimerSeconds: -1})
	s.ErrorIs(err, ErrInvalidSettings)
}

// failingStorage simulates an unreachable settings store
type failingStorage struct {
	*memory.Storage
}

func (f *failingStorage) GetSettings(ctx context.Context) (model.Settings, error) {
	return model.Settings{}, errors.New("storage unavailable")
}

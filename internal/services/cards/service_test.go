package cards

import (
	"context"
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

func (s *ServiceSuite) TestCatalogFallsBackToDefaults() {
	// Nothing seeded yet
	cards := s.service.Catalog(s.ctx)
	s.Equal(model.DefaultCatalog(), cards)
}

func (s *ServiceSuite) TestCatalogReturnsStoredCards() {
	stored := []model.Card{
		{Name: "pirate", Type: model.CardTypeRole},
		{Name: "Antidote", Type: model.CardTypeBonus},
		{Name: "Boussole", Type: model.CardTypeBonus},
	}
	_ = s.storage.SaveCards(s.ctx, stored)

	cards := s.service.Catalog(s.ctx)
	s.Equal(stored, cards)
}

func (s *ServiceSuite) TestByType() {
	_ = s.storage.SaveCards(s.ctx, model.DefaultCatalog())

	roles := s.service.ByType(s.ctx, model.CardTypeRole)
	s.Len(roles, 3)

	bonus := s.service.ByType(s.ctx, model.CardTypeBonus)
	s.Len(bonus, 1)
	s.Equal("Antidote", bonus[0].Name)
}

func (s *ServiceSuite) TestGet() {
	_ = s.storage.SaveCards(s.ctx, model.DefaultCatalog())

	card, err := s.service.Get(s.ctx, "ile")
	s.Require().NoError(err)
	s.Equal(model.CardTypeAction, card.Type)

	_, err = s.service.Get(s.ctx, "kraken")
	s.ErrorIs(err, model.ErrCardNotFound)
}

func (s *ServiceSuite) TestSeedWritesDefaultsOnce() {
	err := s.service.Seed(s.ctx)
	s.Require().NoError(err)

	stored, err := s.storage.GetCards(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.DefaultCatalog(), stored)

	// Seeding again must not overwrite a modified catalog
	custom := []model.Card{{Name: "custom", Type: model.CardTypeBonus}}
	_ = s.storage.SaveCards(s.ctx, custom)

	err = s.service.Seed(s.ctx)
	s.Require().NoError(err)

	stored, _ = s.storage.GetCards(s.ctx)
	s.Equal(custom, stored)
}

func (s *ServiceSuite) TestReplace() {
	custom := []model.Card{{Name: "custom", Type: model.CardTypeBonus}}

	err := s.service.Replace(s.ctx, custom)
	s.Require().NoError(err)

	s.Equal(custom, s.service.Catalog(s.ctx))
}

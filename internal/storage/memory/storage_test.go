package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anthonyvouin/icoproject/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:          "user-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeleteUser() {
	user := &model.User{ID: "user-1", DisplayName: "Alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	err := s.storage.DeleteUser(s.ctx, "user-1")
	s.Require().NoError(err)

	_, err = s.storage.GetUser(s.ctx, "user-1")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Registered user tests

func (s *StorageSuite) TestSaveAndGetRegisteredUser() {
	ru := &model.RegisteredUser{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
	}

	err := s.storage.SaveRegisteredUser(s.ctx, ru)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRegisteredUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(ru.Email, retrieved.Email)
}

func (s *StorageSuite) TestGetRegisteredUserByEmail() {
	ru := &model.RegisteredUser{
		UserID:       "user-1",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
	}
	_ = s.storage.SaveRegisteredUser(s.ctx, ru)

	retrieved, err := s.storage.GetRegisteredUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("user-1", string(retrieved.UserID))
}

func (s *StorageSuite) TestGetRegisteredUserByEmailNotFound() {
	_, err := s.storage.GetRegisteredUserByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:    "game-1",
		Phase: model.PhaseCrewSelection,
		Players: []model.Player{
			{ID: 0, Name: "Alice", Role: model.RolePirate},
			{ID: 1, Name: "Bob", Role: model.RoleMarin},
		},
		CurrentCaptain: 1,
		SelectedCrew:   []int{0, 1},
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Phase, retrieved.Phase)
	s.Equal(game.SelectedCrew, retrieved.SelectedCrew)
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestDeleteGame() {
	game := &model.Game{ID: "game-1", Phase: model.PhaseCaptainVote}
	_ = s.storage.SaveGame(s.ctx, game)

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Card catalog tests

func (s *StorageSuite) TestSaveAndGetCards() {
	cards := model.DefaultCatalog()

	err := s.storage.SaveCards(s.ctx, cards)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCards(s.ctx)
	s.Require().NoError(err)
	s.Equal(cards, retrieved)
}

func (s *StorageSuite) TestGetCardsNotSeeded() {
	_, err := s.storage.GetCards(s.ctx)
	s.ErrorIs(err, model.ErrCatalogNotSeeded)
}

func (s *StorageSuite) TestGetCard() {
	_ = s.storage.SaveCards(s.ctx, model.DefaultCatalog())

	card, err := s.storage.GetCard(s.ctx, "sirene")
	s.Require().NoError(err)
	s.Equal(model.CardTypeRole, card.Type)

	_, err = s.storage.GetCard(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCardNotFound)
}

// Settings tests

func (s *StorageSuite) TestSaveAndGetSettings() {
	settings := model.Settings{RoundsToWin: 7, TimerSeconds: 15}

	err := s.storage.SaveSettings(s.ctx, settings)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(settings, retrieved)
}

func (s *StorageSuite) TestGetSettingsNotFound() {
	_, err := s.storage.GetSettings(s.ctx)
	s.ErrorIs(err, model.ErrSettingsNotFound)
}

// Game session tests

func (s *StorageSuite) TestSaveAndGetGameSession() {
	session := &model.GameSession{
		ID:        "session-1",
		UserID:    "user-1",
		StartedAt: time.Now(),
	}

	err := s.storage.SaveGameSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGameSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Nil(retrieved.EndedAt)
}

func (s *StorageSuite) TestGetGameSessionNotFound() {
	_, err := s.storage.GetGameSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

package memory

import (
	"context"
	"sync"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users           map[model.UserID]*model.User
	registeredUsers map[model.UserID]*model.RegisteredUser
	emailIndex      map[string]model.UserID
	games           map[model.GameID]*model.Game
	cards           []model.Card
	settings        *model.Settings
	sessions        map[model.SessionID]*model.GameSession
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:           make(map[model.UserID]*model.User),
		registeredUsers: make(map[model.UserID]*model.RegisteredUser),
		emailIndex:      make(map[string]model.UserID),
		games:           make(map[model.GameID]*model.Game),
		sessions:        make(map[model.SessionID]*model.GameSession),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

// Registered user operations

func (s *Storage) SaveRegisteredUser(ctx context.Context, ru *model.RegisteredUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredUsers[ru.UserID] = ru
	s.emailIndex[ru.Email] = ru.UserID
	return nil
}

func (s *Storage) GetRegisteredUser(ctx context.Context, userID model.UserID) (*model.RegisteredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ru, ok := s.registeredUsers[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return ru, nil
}

func (s *Storage) GetRegisteredUserByEmail(ctx context.Context, email string) (*model.RegisteredUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	userID, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	ru, ok := s.registeredUsers[userID]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return ru, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// Card catalog operations

func (s *Storage) SaveCards(ctx context.Context, cards []model.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = make([]model.Card, len(cards))
	copy(s.cards, cards)
	return nil
}

func (s *Storage) GetCards(ctx context.Context) ([]model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cards == nil {
		return nil, model.ErrCatalogNotSeeded
	}
	result := make([]model.Card, len(s.cards))
	copy(result, s.cards)
	return result, nil
}

func (s *Storage) GetCard(ctx context.Context, name string) (*model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cards {
		if s.cards[i].Name == name {
			card := s.cards[i]
			return &card, nil
		}
	}
	return nil, model.ErrCardNotFound
}

// Settings operations

func (s *Storage) SaveSettings(ctx context.Context, settings model.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

func (s *Storage) GetSettings(ctx context.Context) (model.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return model.Settings{}, model.ErrSettingsNotFound
	}
	return *s.settings, nil
}

// Game session operations

func (s *Storage) SaveGameSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetGameSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

package storage

import (
	"context"

	"github.com/anthonyvouin/icoproject/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	DeleteUser(ctx context.Context, id model.UserID) error

	// Registered user operations
	SaveRegisteredUser(ctx context.Context, ru *model.RegisteredUser) error
	GetRegisteredUser(ctx context.Context, userID model.UserID) (*model.RegisteredUser, error)
	GetRegisteredUserByEmail(ctx context.Context, email string) (*model.RegisteredUser, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Card catalog operations
	SaveCards(ctx context.Context, cards []model.Card) error
	GetCards(ctx context.Context) ([]model.Card, error)
	GetCard(ctx context.Context, name string) (*model.Card, error)

	// Settings operations
	SaveSettings(ctx context.Context, settings model.Settings) error
	GetSettings(ctx context.Context) (model.Settings, error)

	// Game session operations
	SaveGameSession(ctx context.Context, session *model.GameSession) error
	GetGameSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
}

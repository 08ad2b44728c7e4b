package session

import (
	"context"
	"log/slog"

	"github.com/anthonyvouin/icoproject/internal/dependencies/clock"
	"github.com/anthonyvouin/icoproject/internal/dependencies/random"
	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/storage"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service manages game session records, the persistent history of games
// played. A session is created when a game starts and stamped when it ends.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new SessionService
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// Start creates the session record for a new game. A failure here must
// abort game creation; games are never played unrecorded.
func (s *Service) Start(ctx context.Context, userID model.UserID) (*model.GameSession, error) {
	session := &model.GameSession{
		ID:        model.SessionID("gs_" + s.random.String(16, idAlphabet)),
		UserID:    userID,
		StartedAt: s.clock.Now(),
	}

	if err := s.storage.SaveGameSession(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("game session started",
		slog.String("session_id", string(session.ID)),
		slog.String("user_id", string(userID)))

	return session, nil
}

// End stamps the session with its end time
func (s *Service) End(ctx context.Context, id model.SessionID) error {
	session, err := s.storage.GetGameSession(ctx, id)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	session.EndedAt = &now

	if err := s.storage.SaveGameSession(ctx, session); err != nil {
		return err
	}

	s.logger.Info("game session ended",
		slog.String("session_id", string(id)))

	return nil
}

// Get returns a session record
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	return s.storage.GetGameSession(ctx, id)
}

// ServiceInterface is the session surface used by other components
type ServiceInterface interface {
	Start(ctx context.Context, userID model.UserID) (*model.GameSession, error)
	End(ctx context.Context, id model.SessionID) error
	Get(ctx context.Context, id model.SessionID) (*model.GameSession, error)
}

var _ ServiceInterface = (*Service)(nil)

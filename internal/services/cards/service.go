package cards

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anthonyvouin/icoproject/internal/model"
	"github.com/anthonyvouin/icoproject/internal/storage"
)

// Service provides access to the card catalog
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new CardsService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Catalog returns the card catalog. A missing or unreadable catalog
// degrades to the built-in default so games can always be dealt.
func (s *Service) Catalog(ctx context.Context) []model.Card {
	cards, err := s.storage.GetCards(ctx)
	if err != nil {
		if !errors.Is(err, model.ErrCatalogNotSeeded) {
			s.logger.Warn("card catalog unavailable, using defaults",
				slog.String("error", err.Error()))
		}
		return model.DefaultCatalog()
	}
	return cards
}

// ByType returns the catalog cards of the given type
func (s *Service) ByType(ctx context.Context, cardType model.CardType) []model.Card {
	var filtered []model.Card
	for _, card := range s.Catalog(ctx) {
		if card.Type == cardType {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// Get returns a single catalog card by name
func (s *Service) Get(ctx context.Context, name string) (*model.Card, error) {
	return s.storage.GetCard(ctx, name)
}

// Seed writes the default catalog to storage if none exists yet
func (s *Service) Seed(ctx context.Context) error {
	_, err := s.storage.GetCards(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrCatalogNotSeeded) {
		return err
	}

	s.logger.Info("seeding default card catalog")
	return s.storage.SaveCards(ctx, model.DefaultCatalog())
}

// Replace overwrites the stored catalog
func (s *Service) Replace(ctx context.Context, cards []model.Card) error {
	return s.storage.SaveCards(ctx, cards)
}

// ServiceInterface is the card catalog surface used by other components
type ServiceInterface interface {
	Catalog(ctx context.Context) []model.Card
	ByType(ctx context.Context, cardType model.CardType) []model.Card
	Get(ctx context.Context, name string) (*model.Card, error)
	Seed(ctx context.Context) error
	Replace(ctx context.Context, cards []model.Card) error
}

var _ ServiceInterface = (*Service)(nil)

package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
)

// TimelineCardService implements the thin, ownerless timeline card surface:
// create and list, nothing else. Cards are immutable once published.
type TimelineCardService struct {
	cards  ports.TimelineCardRepository
	assets ports.AssetStore
	logger *zap.Logger
}

// NewTimelineCardService creates a new timeline card service
func NewTimelineCardService(
	cards ports.TimelineCardRepository,
	assets ports.AssetStore,
	logger *zap.Logger,
) *TimelineCardService {
	return &TimelineCardService{
		cards:  cards,
		assets: assets,
		logger: logger,
	}
}

// CreateTimelineCardInput carries the fields for a new card. Only the image
// URL is enforced; the rest is accepted as supplied.
type CreateTimelineCardInput struct {
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"imageUrl"`
}

// Create publishes a new timeline card.
func (s *TimelineCardService) Create(ctx context.Context, input CreateTimelineCardInput) (*entities.TimelineCard, error) {
	card, err := entities.NewTimelineCard(input.Title, input.Date, input.Type, input.Description, input.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}

	s.logger.Info("timeline card created", zap.String("cardID", card.ID))

	return card, nil
}

// List returns every card, oldest date first.
func (s *TimelineCardService) List(ctx context.Context) ([]entities.TimelineCard, error) {
	return s.cards.FindAll(ctx)
}

// UploadImage stores a card image with the asset host.
func (s *TimelineCardService) UploadImage(ctx context.Context, blob []byte, contentType string) (*ports.UploadResult, error) {
	return uploadImage(ctx, s.assets, blob, contentType, "timelinecards")
}

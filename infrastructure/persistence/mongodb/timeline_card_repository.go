package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
)

// TimelineCardRepository implements ports.TimelineCardRepository against
// the timeline_cards collection.
type TimelineCardRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewTimelineCardRepository creates a new timeline card repository
func NewTimelineCardRepository(db *mongo.Database, logger *zap.Logger) ports.TimelineCardRepository {
	return &TimelineCardRepository{
		col:    db.Collection(timelineCollection),
		logger: logger,
	}
}

// Create stores a new card
func (r *TimelineCardRepository) Create(ctx context.Context, card *entities.TimelineCard) error {
	if _, err := r.col.InsertOne(ctx, card); err != nil {
		r.logger.Error("failed to insert timeline card",
			zap.String("cardID", card.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("create timeline card", err)
	}
	return nil
}

// FindAll retrieves every card, ordered by date ascending
func (r *TimelineCardRepository) FindAll(ctx context.Context) ([]entities.TimelineCard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list timeline cards", err)
	}

	var cards []entities.TimelineCard
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, pkgerrors.NewDatabaseError("decode timeline cards", err)
	}
	return cards, nil
}

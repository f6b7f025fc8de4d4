package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
)

// CollectionRepository implements ports.CollectionRepository against the
// collections collection. Membership maintenance uses $addToSet/$pull so
// the memories list keeps its set semantics under concurrency.
type CollectionRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *mongo.Database, logger *zap.Logger) ports.CollectionRepository {
	return &CollectionRepository{
		col:    db.Collection(collectionsCollection),
		logger: logger,
	}
}

// Create stores a new collection
func (r *CollectionRepository) Create(ctx context.Context, collection *entities.Collection) error {
	if _, err := r.col.InsertOne(ctx, collection); err != nil {
		r.logger.Error("failed to insert collection",
			zap.String("collectionID", collection.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("create collection", err)
	}
	return nil
}

// FindByOwner retrieves the owner's collections, ordered by lastUpdated
// descending
func (r *CollectionRepository) FindByOwner(ctx context.Context, ownerID string) ([]entities.Collection, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lastUpdated", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"owner": ownerID}, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list collections", err)
	}

	var collections []entities.Collection
	if err := cursor.All(ctx, &collections); err != nil {
		return nil, pkgerrors.NewDatabaseError("decode collections", err)
	}
	return collections, nil
}

// FindOwned retrieves a collection scoped to its owner
func (r *CollectionRepository) FindOwned(ctx context.Context, id, ownerID string) (*entities.Collection, error) {
	var collection entities.Collection
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner": ownerID}).Decode(&collection)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.NewNotFoundError("Collection")
		}
		return nil, pkgerrors.NewDatabaseError("get collection", err)
	}
	return &collection, nil
}

// Update replaces an owned collection document
func (r *CollectionRepository) Update(ctx context.Context, collection *entities.Collection) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": collection.ID, "owner": collection.Owner}, collection)
	if err != nil {
		return pkgerrors.NewDatabaseError("update collection", err)
	}
	if result.MatchedCount == 0 {
		return pkgerrors.NewNotFoundError("Collection")
	}
	return nil
}

// Delete removes an owned collection
func (r *CollectionRepository) Delete(ctx context.Context, id, ownerID string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner": ownerID})
	if err != nil {
		return pkgerrors.NewDatabaseError("delete collection", err)
	}
	if result.DeletedCount == 0 {
		return pkgerrors.NewNotFoundError("Collection")
	}
	return nil
}

// AddMemory inserts memoryID into the owned collection's memories set.
// $addToSet makes the append idempotent: a present ID is a no-op and the
// list can never hold the same reference twice.
func (r *CollectionRepository) AddMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "owner": ownerID},
		bson.M{
			"$addToSet": bson.M{"memories": memoryID},
			"$set":      bson.M{"lastUpdated": time.Now().UTC()},
		},
	)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("add memory to collection", err)
	}
	if result.MatchedCount == 0 {
		return nil, pkgerrors.NewNotFoundError("Collection")
	}

	return r.FindOwned(ctx, id, ownerID)
}

// RemoveMemory pulls memoryID from the owned collection's memories set.
// Removing an absent ID succeeds and leaves the list unchanged.
func (r *CollectionRepository) RemoveMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "owner": ownerID},
		bson.M{
			"$pull": bson.M{"memories": memoryID},
			"$set":  bson.M{"lastUpdated": time.Now().UTC()},
		},
	)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("remove memory from collection", err)
	}
	if result.MatchedCount == 0 {
		return nil, pkgerrors.NewNotFoundError("Collection")
	}

	return r.FindOwned(ctx, id, ownerID)
}

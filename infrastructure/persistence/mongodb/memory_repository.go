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

// MemoryRepository implements ports.MemoryRepository against the memories
// collection. Relationship updates (likes, comments) are expressed as
// single atomic update documents so concurrent writers cannot lose each
// other's changes.
type MemoryRepository struct {
	col    *mongo.Collection
	logger *zap.Logger
}

// NewMemoryRepository creates a new memory repository
func NewMemoryRepository(db *mongo.Database, logger *zap.Logger) ports.MemoryRepository {
	return &MemoryRepository{
		col:    db.Collection(memoriesCollection),
		logger: logger,
	}
}

// Create stores a new memory
func (r *MemoryRepository) Create(ctx context.Context, memory *entities.Memory) error {
	if _, err := r.col.InsertOne(ctx, memory); err != nil {
		r.logger.Error("failed to insert memory",
			zap.String("memoryID", memory.ID),
			zap.Error(err),
		)
		return pkgerrors.NewDatabaseError("create memory", err)
	}
	return nil
}

// FindByOwner retrieves the owner's memories matching the filter, ordered
// by date descending
func (r *MemoryRepository) FindByOwner(ctx context.Context, filter ports.MemoryFilter) ([]entities.Memory, error) {
	query := bson.M{"owner": filter.Owner}

	if filter.StartDate != nil || filter.EndDate != nil {
		dateRange := bson.M{}
		if filter.StartDate != nil {
			dateRange["$gte"] = *filter.StartDate
		}
		if filter.EndDate != nil {
			dateRange["$lte"] = *filter.EndDate
		}
		query["date"] = dateRange
	}

	if len(filter.Tags) > 0 {
		query["tags"] = bson.M{"$in": filter.Tags}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list memories", err)
	}

	var memories []entities.Memory
	if err := cursor.All(ctx, &memories); err != nil {
		return nil, pkgerrors.NewDatabaseError("decode memories", err)
	}
	return memories, nil
}

// FindPublic retrieves all public memories with the fixed public
// projection, ordered by createdAt descending
func (r *MemoryRepository) FindPublic(ctx context.Context) ([]entities.Memory, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.M{
			"title":       1,
			"description": 1,
			"date":        1,
			"imageUrls":   1,
			"tags":        1,
			"owner":       1,
			"createdAt":   1,
		})

	cursor, err := r.col.Find(ctx, bson.M{"visibility": entities.VisibilityPublic}, opts)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("list public memories", err)
	}

	var memories []entities.Memory
	if err := cursor.All(ctx, &memories); err != nil {
		return nil, pkgerrors.NewDatabaseError("decode memories", err)
	}
	return memories, nil
}

// FindByID retrieves a memory by ID regardless of owner
func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*entities.Memory, error) {
	var memory entities.Memory
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&memory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.NewNotFoundError("Memory")
		}
		return nil, pkgerrors.NewDatabaseError("get memory", err)
	}
	return &memory, nil
}

// FindOwned retrieves a memory scoped to its owner. A missing record and a
// record owned by someone else look identical to the caller.
func (r *MemoryRepository) FindOwned(ctx context.Context, id, ownerID string) (*entities.Memory, error) {
	var memory entities.Memory
	err := r.col.FindOne(ctx, bson.M{"_id": id, "owner": ownerID}).Decode(&memory)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.NewNotFoundError("Memory")
		}
		return nil, pkgerrors.NewDatabaseError("get memory", err)
	}
	return &memory, nil
}

// Update replaces an owned memory document
func (r *MemoryRepository) Update(ctx context.Context, memory *entities.Memory) error {
	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": memory.ID, "owner": memory.Owner}, memory)
	if err != nil {
		return pkgerrors.NewDatabaseError("update memory", err)
	}
	if result.MatchedCount == 0 {
		return pkgerrors.NewNotFoundError("Memory")
	}
	return nil
}

// Delete removes an owned memory
func (r *MemoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner": ownerID})
	if err != nil {
		return pkgerrors.NewDatabaseError("delete memory", err)
	}
	if result.DeletedCount == 0 {
		return pkgerrors.NewNotFoundError("Memory")
	}
	return nil
}

// ToggleLike flips userID's membership in the likes set. The unlike and
// like branches are each a single conditional update, so two concurrent
// toggles for the same user settle on one of the two valid states and the
// set never holds a duplicate entry.
func (r *MemoryRepository) ToggleLike(ctx context.Context, id, userID string) (*entities.Memory, error) {
	now := time.Now().UTC()

	// Unlike: only matches when the user is currently in the set.
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "likes": userID},
		bson.M{
			"$pull": bson.M{"likes": userID},
			"$set":  bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("toggle like", err)
	}

	if result.MatchedCount == 0 {
		// Like: $addToSet keeps the set free of duplicates even if the
		// unlike branch raced with another writer.
		result, err = r.col.UpdateOne(ctx,
			bson.M{"_id": id},
			bson.M{
				"$addToSet": bson.M{"likes": userID},
				"$set":      bson.M{"updatedAt": now},
			},
		)
		if err != nil {
			return nil, pkgerrors.NewDatabaseError("toggle like", err)
		}
		if result.MatchedCount == 0 {
			return nil, pkgerrors.NewNotFoundError("Memory")
		}
	}

	return r.FindByID(ctx, id)
}

// AppendComment atomically pushes a comment and refreshes updatedAt
func (r *MemoryRepository) AppendComment(ctx context.Context, id string, comment entities.Comment) (*entities.Memory, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	if err != nil {
		return nil, pkgerrors.NewDatabaseError("add comment", err)
	}
	if result.MatchedCount == 0 {
		return nil, pkgerrors.NewNotFoundError("Memory")
	}

	return r.FindByID(ctx, id)
}

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"memoirbox-backend/infrastructure/config"
)

// Collection names in the document store.
const (
	memoriesCollection    = "memories"
	collectionsCollection = "collections"
	timelineCollection    = "timeline_cards"
	usersCollection       = "users"
)

// Connect establishes a MongoDB connection and verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the query paths rely on: owner-scoped
// listings, the public feed, tag filters and the geospatial index on memory
// locations.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		memoriesCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "tags", Value: 1}}},
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		},
		collectionsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "lastUpdated", Value: -1}}},
		},
		timelineCollection: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}

	return nil
}

package di

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"memoirbox-backend/application/services"
	"memoirbox-backend/infrastructure/config"
	"memoirbox-backend/pkg/auth"
)

// Container holds all application dependencies. Clients are constructed
// once at startup and torn down on shutdown; nothing hangs off package
// globals.
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	MongoClient     *mongo.Client
	JWTValidator    *auth.JWTValidator
	MemoryService   *services.MemoryService
	CollectionSvc   *services.CollectionService
	TimelineCardSvc *services.TimelineCardService
}

// Shutdown releases the container's long-lived resources.
func (c *Container) Shutdown(ctx context.Context) error {
	return c.MongoClient.Disconnect(ctx)
}

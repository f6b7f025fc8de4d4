//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"memoirbox-backend/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideMongoClient,
	ProvideMongoDatabase,
	ProvideAWSConfig,
	ProvideS3Client,
	ProvideAssetStore,
	ProvideMemoryRepository,
	ProvideCollectionRepository,
	ProvideTimelineCardRepository,
	ProvideUserDirectory,
	ProvideJWTValidator,
	ProvideMemoryService,
	ProvideCollectionService,
	ProvideTimelineCardService,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}

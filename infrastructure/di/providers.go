package di

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/application/services"
	"memoirbox-backend/infrastructure/config"
	"memoirbox-backend/infrastructure/persistence/mongodb"
	s3store "memoirbox-backend/infrastructure/storage/s3"
	"memoirbox-backend/pkg/auth"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMongoClient connects to the document store
func ProvideMongoClient(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	return mongodb.Connect(ctx, cfg)
}

// ProvideMongoDatabase selects the application database and ensures the
// indexes the query paths rely on
func ProvideMongoDatabase(ctx context.Context, client *mongo.Client, cfg *config.Config) (*mongo.Database, error) {
	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// ProvideAWSConfig creates AWS configuration for the asset store
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

// ProvideS3Client creates an S3 client, pointed at a custom endpoint for
// MinIO-style deployments when one is configured
func ProvideS3Client(awsCfg aws.Config, cfg *config.Config) *awss3.Client {
	return awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}

// ProvideAssetStore creates the S3-backed asset store
func ProvideAssetStore(client *awss3.Client, cfg *config.Config, logger *zap.Logger) ports.AssetStore {
	return s3store.NewAssetStore(client, cfg.S3Bucket, cfg.S3Region, cfg.AssetBaseURL, logger)
}

// ProvideMemoryRepository creates a memory repository
func ProvideMemoryRepository(db *mongo.Database, logger *zap.Logger) ports.MemoryRepository {
	return mongodb.NewMemoryRepository(db, logger)
}

// ProvideCollectionRepository creates a collection repository
func ProvideCollectionRepository(db *mongo.Database, logger *zap.Logger) ports.CollectionRepository {
	return mongodb.NewCollectionRepository(db, logger)
}

// ProvideTimelineCardRepository creates a timeline card repository
func ProvideTimelineCardRepository(db *mongo.Database, logger *zap.Logger) ports.TimelineCardRepository {
	return mongodb.NewTimelineCardRepository(db, logger)
}

// ProvideUserDirectory creates the user directory projection
func ProvideUserDirectory(db *mongo.Database) ports.UserDirectory {
	return mongodb.NewUserDirectory(db)
}

// ProvideJWTValidator creates the request credential validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && cfg.IsDevelopment() {
		secret = "development-secret-change-in-production"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: "HS256",
		SecretKey:     secret,
		Issuer:        cfg.JWTIssuer,
	})
}

// ProvideMemoryService creates the memory access service
func ProvideMemoryService(
	memories ports.MemoryRepository,
	users ports.UserDirectory,
	assets ports.AssetStore,
	logger *zap.Logger,
) *services.MemoryService {
	return services.NewMemoryService(memories, users, assets, logger)
}

// ProvideCollectionService creates the collection access service
func ProvideCollectionService(
	collections ports.CollectionRepository,
	memories ports.MemoryRepository,
	logger *zap.Logger,
) *services.CollectionService {
	return services.NewCollectionService(collections, memories, logger)
}

// ProvideTimelineCardService creates the timeline card service
func ProvideTimelineCardService(
	cards ports.TimelineCardRepository,
	assets ports.AssetStore,
	logger *zap.Logger,
) *services.TimelineCardService {
	return services.NewTimelineCardService(cards, assets, logger)
}

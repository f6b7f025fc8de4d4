package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
)

// AssetStore implements ports.AssetStore on top of an S3-compatible bucket.
// The blob lives only in memory for the duration of the call; a failed
// upload leaves nothing behind locally.
type AssetStore struct {
	client  *awss3.Client
	bucket  string
	region  string
	baseURL string
	logger  *zap.Logger
}

// NewAssetStore creates an S3-backed asset store. baseURL overrides the
// derived virtual-hosted URL for MinIO-style or CDN-fronted deployments.
func NewAssetStore(client *awss3.Client, bucket, region, baseURL string, logger *zap.Logger) ports.AssetStore {
	return &AssetStore{
		client:  client,
		bucket:  bucket,
		region:  region,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// Upload stores the blob under a fresh key in the given folder and returns
// its durable URL plus the key as the opaque identifier.
func (s *AssetStore) Upload(ctx context.Context, blob []byte, contentType, folder string) (*ports.UploadResult, error) {
	key := fmt.Sprintf("%s/%s", folder, uuid.New().String())

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		s.logger.Error("failed to upload asset",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("asset uploaded",
		zap.String("key", key),
		zap.Int("bytes", len(blob)),
	)

	return &ports.UploadResult{
		SecureURL: s.objectURL(key),
		PublicID:  key,
	}, nil
}

func (s *AssetStore) objectURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

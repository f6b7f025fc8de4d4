package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "memoirbox", cfg.MongoDatabase)
	assert.Equal(t, 100, cfg.RequestsPerMinute)
	assert.True(t, cfg.EnableCORS)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("MONGO_DATABASE", "memoirbox_test")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("REQUESTS_PER_MINUTE", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "memoirbox_test", cfg.MongoDatabase)
	assert.False(t, cfg.EnableCORS)
	assert.Equal(t, 5, cfg.RequestsPerMinute)
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{
		Environment: "production",
		MongoURI:    "mongodb://db:27017",
		S3Bucket:    "assets",
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.JWTSecret = "super-secret"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_DevelopmentNeedsNothing(t *testing.T) {
	cfg := &Config{Environment: "development"}
	assert.NoError(t, cfg.Validate())
}

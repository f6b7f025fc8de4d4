package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
	"memoirbox-backend/tests/mocks"
)

func TestTimelineCardService_Create_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockTimelineCardRepository)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*entities.TimelineCard")).Return(nil)

	svc := NewTimelineCardService(mockRepo, nil, zap.NewNop())

	// Act
	card, err := svc.Create(ctx, CreateTimelineCardInput{
		Title:    "First steps",
		Date:     time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:     "milestone",
		ImageURL: "https://assets/timelinecards/steps.jpg",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, card.ID)
	assert.Equal(t, "First steps", card.Title)
	assert.Equal(t, "milestone", card.Type)
	mockRepo.AssertExpectations(t)
}

func TestTimelineCardService_Create_RequiresImageURL(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockTimelineCardRepository)

	svc := NewTimelineCardService(mockRepo, nil, zap.NewNop())

	// Act
	card, err := svc.Create(ctx, CreateTimelineCardInput{
		Title: "First steps",
		Date:  time.Now(),
		Type:  "milestone",
	})

	// Assert
	assert.Nil(t, card)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Contains(t, err.Error(), "Image URL is required")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestTimelineCardService_List_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockTimelineCardRepository)

	cards := []entities.TimelineCard{
		{ID: "card1", Title: "Born", Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "card2", Title: "First steps", Date: time.Date(2021, 3, 14, 0, 0, 0, 0, time.UTC)},
	}
	mockRepo.On("FindAll", ctx).Return(cards, nil)

	svc := NewTimelineCardService(mockRepo, nil, zap.NewNop())

	// Act
	got, err := svc.List(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, cards, got)
	mockRepo.AssertExpectations(t)
}

func TestTimelineCardService_UploadImage_UsesCardFolder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockAssets := new(mocks.MockAssetStore)

	blob := []byte("fake-jpeg-bytes")
	mockAssets.On("Upload", ctx, blob, "image/jpeg", "timelinecards").Return(&ports.UploadResult{
		SecureURL: "https://assets/timelinecards/xyz.jpg",
		PublicID:  "timelinecards/xyz",
	}, nil)

	svc := NewTimelineCardService(nil, mockAssets, zap.NewNop())

	// Act
	result, err := svc.UploadImage(ctx, blob, "image/jpeg")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "timelinecards/xyz", result.PublicID)
	mockAssets.AssertExpectations(t)
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memoirbox-backend/application/services"
	"memoirbox-backend/domain/core/entities"
	"memoirbox-backend/tests/mocks"
)

func newTimelineCardHandlerForTest(cards *mocks.MockTimelineCardRepository, assets *mocks.MockAssetStore) *TimelineCardHandler {
	svc := services.NewTimelineCardService(cards, assets, zap.NewNop())
	return NewTimelineCardHandler(svc, zap.NewNop())
}

func TestTimelineCardHandler_Create_Success(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockTimelineCardRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.TimelineCard")).Return(nil)

	handler := newTimelineCardHandlerForTest(mockRepo, nil)

	body, _ := json.Marshal(map[string]string{
		"title":    "First steps",
		"date":     "2021-03-14T00:00:00Z",
		"type":     "milestone",
		"imageUrl": "https://assets/timelinecards/steps.jpg",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/timeline-cards", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	// Act
	handler.Create(rec, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entities.TimelineCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	mockRepo.AssertExpectations(t)
}

func TestTimelineCardHandler_Create_MissingImageURL(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockTimelineCardRepository)
	handler := newTimelineCardHandlerForTest(mockRepo, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/timeline-cards", bytes.NewBufferString(`{"title":"No image"}`))
	rec := httptest.NewRecorder()

	// Act
	handler.Create(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image URL is required")
	mockRepo.AssertNotCalled(t, "Create")
}

func TestTimelineCardHandler_List_Success(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockTimelineCardRepository)
	mockRepo.On("FindAll", mock.Anything).Return([]entities.TimelineCard{
		{ID: "card1", Title: "Born", Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	handler := newTimelineCardHandlerForTest(mockRepo, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/timeline-cards", nil)
	rec := httptest.NewRecorder()

	// Act
	handler.List(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "card1")
	mockRepo.AssertExpectations(t)
}

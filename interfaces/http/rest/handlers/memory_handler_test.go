package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/application/services"
	"memoirbox-backend/domain/core/entities"
	"memoirbox-backend/pkg/auth"
	pkgerrors "memoirbox-backend/pkg/errors"
	"memoirbox-backend/tests/mocks"
)

func authedRequest(method, target string, body *bytes.Buffer, userID string) *http.Request {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	ctx := auth.SetUserInContext(req.Context(), &auth.UserContext{
		UserID: userID,
		Email:  userID + "@example.com",
	})
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx, ok := req.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newMemoryHandlerForTest(memories *mocks.MockMemoryRepository, users *mocks.MockUserDirectory, assets *mocks.MockAssetStore) *MemoryHandler {
	svc := services.NewMemoryService(memories, users, assets, zap.NewNop())
	return NewMemoryHandler(svc, zap.NewNop())
}

func TestMemoryHandler_Create_Success(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockMemoryRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Memory")).Return(nil)

	handler := newMemoryHandlerForTest(mockRepo, nil, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"title":       "Beach day",
		"description": "Sand everywhere",
		"imageUrls":   []string{"https://img/1.jpg"},
		"date":        "2023-06-01T00:00:00Z",
	})

	req := authedRequest(http.MethodPost, "/api/memories", bytes.NewBuffer(body), "user123")
	rec := httptest.NewRecorder()

	// Act
	handler.Create(rec, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entities.Memory
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user123", created.Owner)
	mockRepo.AssertExpectations(t)
}

func TestMemoryHandler_Create_InvalidBody(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockMemoryRepository)
	handler := newMemoryHandlerForTest(mockRepo, nil, nil)

	req := authedRequest(http.MethodPost, "/api/memories", bytes.NewBufferString("{not json"), "user123")
	rec := httptest.NewRecorder()

	// Act
	handler.Create(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestMemoryHandler_Create_MissingUser(t *testing.T) {
	// Arrange
	handler := newMemoryHandlerForTest(new(mocks.MockMemoryRepository), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/memories", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()

	// Act
	handler.Create(rec, req)

	// Assert
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMemoryHandler_List_ParsesQuery(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockMemoryRepository)
	mockUsers := new(mocks.MockUserDirectory)

	mockRepo.On("FindByOwner", mock.Anything, mock.MatchedBy(func(f ports.MemoryFilter) bool {
		return f.Owner == "user123" &&
			f.StartDate != nil && f.StartDate.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.EndDate != nil &&
			len(f.Tags) == 2
	})).Return([]entities.Memory{}, nil)
	mockUsers.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(map[string]entities.User{}, nil)

	handler := newMemoryHandlerForTest(mockRepo, mockUsers, nil)

	req := authedRequest(http.MethodGet, "/api/memories?startDate=2023-01-01&endDate=2023-12-31&tags=travel,%20family", nil, "user123")
	rec := httptest.NewRecorder()

	// Act
	handler.List(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestMemoryHandler_List_BadDate(t *testing.T) {
	// Arrange
	handler := newMemoryHandlerForTest(new(mocks.MockMemoryRepository), nil, nil)

	req := authedRequest(http.MethodGet, "/api/memories?startDate=yesterday", nil, "user123")
	rec := httptest.NewRecorder()

	// Act
	handler.List(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMemoryHandler_Get_NotFound(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockMemoryRepository)
	mockRepo.On("FindByID", mock.Anything, "ghost").Return(nil, pkgerrors.NewNotFoundError("Memory"))

	handler := newMemoryHandlerForTest(mockRepo, new(mocks.MockUserDirectory), nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/memories/ghost", nil), "memoryID", "ghost")
	rec := httptest.NewRecorder()

	// Act
	handler.Get(rec, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Memory not found")
}

func TestMemoryHandler_Delete_Success(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockMemoryRepository)
	mockRepo.On("Delete", mock.Anything, "mem1", "user123").Return(nil)

	handler := newMemoryHandlerForTest(mockRepo, nil, nil)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/memories/mem1", nil, "user123"), "memoryID", "mem1")
	rec := httptest.NewRecorder()

	// Act
	handler.Delete(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Memory deleted successfully")
	mockRepo.AssertExpectations(t)
}

func TestMemoryHandler_AddComment_Success(t *testing.T) {
	// Arrange
	mockRepo := new(mocks.MockMemoryRepository)
	mockUsers := new(mocks.MockUserDirectory)

	memory, err := entities.NewMemory("owner1", "Beach day", "Sand", []string{"https://img/1.jpg"}, time.Now())
	require.NoError(t, err)
	memory.Comments = []entities.Comment{{Author: "user123", Text: "Nice", CreatedAt: time.Now().UTC()}}

	mockRepo.On("AppendComment", mock.Anything, memory.ID, mock.AnythingOfType("entities.Comment")).Return(memory, nil)
	mockUsers.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]string")).Return(map[string]entities.User{}, nil)

	handler := newMemoryHandlerForTest(mockRepo, mockUsers, nil)

	body := bytes.NewBufferString(`{"text":"Nice"}`)
	req := withURLParam(authedRequest(http.MethodPost, "/api/memories/"+memory.ID+"/comments", body, "user123"), "memoryID", memory.ID)
	rec := httptest.NewRecorder()

	// Act
	handler.AddComment(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}

func TestMemoryHandler_Upload_Success(t *testing.T) {
	// Arrange
	mockAssets := new(mocks.MockAssetStore)
	mockAssets.On("Upload", mock.Anything, []byte("fake-image"), "image/png", "memoirbox").Return(&ports.UploadResult{
		SecureURL: "https://assets/memoirbox/abc.png",
		PublicID:  "memoirbox/abc",
	}, nil)

	handler := newMemoryHandlerForTest(nil, nil, mockAssets)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="photo.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := authedRequest(http.MethodPost, "/api/memories/upload", &buf, "user123")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	// Act
	handler.Upload(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "secure_url")
	mockAssets.AssertExpectations(t)
}

func TestMemoryHandler_Upload_MissingFile(t *testing.T) {
	// Arrange
	mockAssets := new(mocks.MockAssetStore)
	handler := newMemoryHandlerForTest(nil, nil, mockAssets)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("caption", "no file here"))
	require.NoError(t, mw.Close())

	req := authedRequest(http.MethodPost, "/api/memories/upload", &buf, "user123")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	// Act
	handler.Upload(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
	mockAssets.AssertNotCalled(t, "Upload")
}

func TestMemoryHandler_Upload_RejectsTextFile(t *testing.T) {
	// Arrange
	mockAssets := new(mocks.MockAssetStore)
	handler := newMemoryHandlerForTest(nil, nil, mockAssets)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="file"; filename="notes.txt"`},
		"Content-Type":        {"text/plain"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte(strings.Repeat("words ", 10)))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := authedRequest(http.MethodPost, "/api/memories/upload", &buf, "user123")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	// Act
	handler.Upload(rec, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only image files are allowed")
	mockAssets.AssertNotCalled(t, "Upload")
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
	"memoirbox-backend/tests/mocks"
)

func newTestCollection(t *testing.T, owner string) *entities.Collection {
	t.Helper()
	collection, err := entities.NewCollection(owner, "Summer 2023", "Trips and birthdays")
	require.NoError(t, err)
	return collection
}

func newCollectionServiceForTest(collections *mocks.MockCollectionRepository, memories *mocks.MockMemoryRepository) *CollectionService {
	return NewCollectionService(collections, memories, zap.NewNop())
}

func TestCollectionService_Create_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockCollectionRepository)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*entities.Collection")).Return(nil)

	svc := newCollectionServiceForTest(mockRepo, nil)

	// Act
	collection, err := svc.Create(ctx, "user123", CreateCollectionInput{
		Name:        "Summer 2023",
		Description: "Trips and birthdays",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, collection.ID)
	assert.Equal(t, "user123", collection.Owner)
	assert.Equal(t, entities.PrivacyPrivate, collection.Privacy)
	assert.Empty(t, collection.Memories)
	mockRepo.AssertExpectations(t)
}

func TestCollectionService_Create_RequiresName(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockCollectionRepository)

	svc := newCollectionServiceForTest(mockRepo, nil)

	// Act
	collection, err := svc.Create(ctx, "user123", CreateCollectionInput{
		Description: "Trips and birthdays",
	})

	// Assert
	assert.Nil(t, collection)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	mockRepo.AssertNotCalled(t, "Create")
}

func TestCollectionService_Get_ForeignOwnerLooksAbsent(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockCollectionRepository)

	mockRepo.On("FindOwned", ctx, "col1", "intruder").Return(nil, pkgerrors.NewNotFoundError("Collection"))

	svc := newCollectionServiceForTest(mockRepo, nil)

	// Act
	collection, err := svc.Get(ctx, "col1", "intruder")

	// Assert
	assert.Nil(t, collection)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "Collection not found")
	mockRepo.AssertExpectations(t)
}

func TestCollectionService_Update_PartialMerge(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockCollectionRepository)

	collection := newTestCollection(t, "user123")
	originalName := collection.Name

	mockRepo.On("FindOwned", ctx, collection.ID, "user123").Return(collection, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*entities.Collection")).Return(nil)

	privacy := entities.PrivacyShared
	svc := newCollectionServiceForTest(mockRepo, nil)

	// Act
	updated, err := svc.Update(ctx, collection.ID, "user123", UpdateCollectionInput{
		Privacy:    &privacy,
		SharedWith: strSlicePtr([]string{"friend1"}),
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, originalName, updated.Name)
	assert.Equal(t, entities.PrivacyShared, updated.Privacy)
	assert.Equal(t, []string{"friend1"}, updated.SharedWith)
	mockRepo.AssertExpectations(t)
}

func TestCollectionService_Delete_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockRepo := new(mocks.MockCollectionRepository)

	mockRepo.On("Delete", ctx, "col1", "user123").Return(nil)

	svc := newCollectionServiceForTest(mockRepo, nil)

	// Act
	err := svc.Delete(ctx, "col1", "user123")

	// Assert
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCollectionService_AddMemory_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCollections := new(mocks.MockCollectionRepository)
	mockMemories := new(mocks.MockMemoryRepository)

	collection := newTestCollection(t, "user123")
	memory := newTestMemory(t, "someone-else")

	withMember := *collection
	withMember.Memories = []string{memory.ID}

	mockCollections.On("FindOwned", ctx, collection.ID, "user123").Return(collection, nil)
	mockMemories.On("FindByID", ctx, memory.ID).Return(memory, nil)
	mockCollections.On("AddMemory", ctx, collection.ID, "user123", memory.ID).Return(&withMember, nil)

	svc := newCollectionServiceForTest(mockCollections, mockMemories)

	// Act
	updated, err := svc.AddMemory(ctx, collection.ID, "user123", memory.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{memory.ID}, updated.Memories)
	mockCollections.AssertExpectations(t)
	mockMemories.AssertExpectations(t)
}

func TestCollectionService_AddMemory_RequiresMemoryID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCollections := new(mocks.MockCollectionRepository)
	mockMemories := new(mocks.MockMemoryRepository)

	svc := newCollectionServiceForTest(mockCollections, mockMemories)

	// Act
	updated, err := svc.AddMemory(ctx, "col1", "user123", "")

	// Assert
	assert.Nil(t, updated)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	mockCollections.AssertNotCalled(t, "FindOwned")
}

func TestCollectionService_AddMemory_MemoryMissing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCollections := new(mocks.MockCollectionRepository)
	mockMemories := new(mocks.MockMemoryRepository)

	collection := newTestCollection(t, "user123")

	mockCollections.On("FindOwned", ctx, collection.ID, "user123").Return(collection, nil)
	mockMemories.On("FindByID", ctx, "ghost").Return(nil, pkgerrors.NewNotFoundError("Memory"))

	svc := newCollectionServiceForTest(mockCollections, mockMemories)

	// Act
	updated, err := svc.AddMemory(ctx, collection.ID, "user123", "ghost")

	// Assert
	assert.Nil(t, updated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Memory not found")
	mockCollections.AssertNotCalled(t, "AddMemory")
}

func TestCollectionService_AddMemory_CollectionMissing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCollections := new(mocks.MockCollectionRepository)
	mockMemories := new(mocks.MockMemoryRepository)

	mockCollections.On("FindOwned", ctx, "col1", "user123").Return(nil, pkgerrors.NewNotFoundError("Collection"))

	svc := newCollectionServiceForTest(mockCollections, mockMemories)

	// Act
	updated, err := svc.AddMemory(ctx, "col1", "user123", "mem1")

	// Assert
	assert.Nil(t, updated)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Collection not found")
	mockMemories.AssertNotCalled(t, "FindByID")
}

func TestCollectionService_RemoveMemory_AbsentIsNoOp(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockCollections := new(mocks.MockCollectionRepository)

	collection := newTestCollection(t, "user123")

	mockCollections.On("FindOwned", ctx, collection.ID, "user123").Return(collection, nil)
	mockCollections.On("RemoveMemory", ctx, collection.ID, "user123", "never-there").Return(collection, nil)

	svc := newCollectionServiceForTest(mockCollections, nil)

	// Act
	updated, err := svc.RemoveMemory(ctx, collection.ID, "user123", "never-there")

	// Assert
	require.NoError(t, err)
	assert.Empty(t, updated.Memories)
	mockCollections.AssertExpectations(t)
}

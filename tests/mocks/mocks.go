// Package mocks provides mock implementations of the application ports for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
)

// MockMemoryRepository is a testify mock for ports.MemoryRepository
type MockMemoryRepository struct {
	mock.Mock
}

func (m *MockMemoryRepository) Create(ctx context.Context, memory *entities.Memory) error {
	args := m.Called(ctx, memory)
	return args.Error(0)
}

func (m *MockMemoryRepository) FindByOwner(ctx context.Context, filter ports.MemoryFilter) ([]entities.Memory, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Memory), args.Error(1)
}

func (m *MockMemoryRepository) FindPublic(ctx context.Context) ([]entities.Memory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Memory), args.Error(1)
}

func (m *MockMemoryRepository) FindByID(ctx context.Context, id string) (*entities.Memory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Memory), args.Error(1)
}

func (m *MockMemoryRepository) FindOwned(ctx context.Context, id, ownerID string) (*entities.Memory, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Memory), args.Error(1)
}

func (m *MockMemoryRepository) Update(ctx context.Context, memory *entities.Memory) error {
	args := m.Called(ctx, memory)
	return args.Error(0)
}

func (m *MockMemoryRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockMemoryRepository) ToggleLike(ctx context.Context, id, userID string) (*entities.Memory, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Memory), args.Error(1)
}

func (m *MockMemoryRepository) AppendComment(ctx context.Context, id string, comment entities.Comment) (*entities.Memory, error) {
	args := m.Called(ctx, id, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Memory), args.Error(1)
}

// MockCollectionRepository is a testify mock for ports.CollectionRepository
type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Create(ctx context.Context, collection *entities.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) FindByOwner(ctx context.Context, ownerID string) ([]entities.Collection, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Collection), args.Error(1)
}

func (m *MockCollectionRepository) FindOwned(ctx context.Context, id, ownerID string) (*entities.Collection, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Collection), args.Error(1)
}

func (m *MockCollectionRepository) Update(ctx context.Context, collection *entities.Collection) error {
	args := m.Called(ctx, collection)
	return args.Error(0)
}

func (m *MockCollectionRepository) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockCollectionRepository) AddMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error) {
	args := m.Called(ctx, id, ownerID, memoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Collection), args.Error(1)
}

func (m *MockCollectionRepository) RemoveMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error) {
	args := m.Called(ctx, id, ownerID, memoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Collection), args.Error(1)
}

// MockTimelineCardRepository is a testify mock for ports.TimelineCardRepository
type MockTimelineCardRepository struct {
	mock.Mock
}

func (m *MockTimelineCardRepository) Create(ctx context.Context, card *entities.TimelineCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockTimelineCardRepository) FindAll(ctx context.Context) ([]entities.TimelineCard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.TimelineCard), args.Error(1)
}

// MockUserDirectory is a testify mock for ports.UserDirectory
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) FindByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserDirectory) FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]entities.User), args.Error(1)
}

// MockAssetStore is a testify mock for ports.AssetStore
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Upload(ctx context.Context, blob []byte, contentType, folder string) (*ports.UploadResult, error) {
	args := m.Called(ctx, blob, contentType, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.UploadResult), args.Error(1)
}

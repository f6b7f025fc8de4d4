package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
	"memoirbox-backend/pkg/utils"
)

// CollectionService implements owner-scoped collection CRUD plus the
// collection-memory relationship maintenance. Membership changes are
// idempotent: adding a present memory and removing an absent one are both
// silent no-ops.
type CollectionService struct {
	collections ports.CollectionRepository
	memories    ports.MemoryRepository
	logger      *zap.Logger
}

// NewCollectionService creates a new collection service
func NewCollectionService(
	collections ports.CollectionRepository,
	memories ports.MemoryRepository,
	logger *zap.Logger,
) *CollectionService {
	return &CollectionService{
		collections: collections,
		memories:    memories,
		logger:      logger,
	}
}

// CreateCollectionInput carries the validated fields for a new collection
type CreateCollectionInput struct {
	Name        string           `json:"name" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Images      []string         `json:"images,omitempty" validate:"omitempty,dive,required"`
	Privacy     entities.Privacy `json:"privacy,omitempty" validate:"omitempty,oneof=private shared public"`
}

// UpdateCollectionInput carries a partial update; nil fields stay untouched
type UpdateCollectionInput struct {
	Name        *string           `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string           `json:"description,omitempty" validate:"omitempty,min=1"`
	Images      *[]string         `json:"images,omitempty" validate:"omitempty,dive,required"`
	Privacy     *entities.Privacy `json:"privacy,omitempty" validate:"omitempty,oneof=private shared public"`
	SharedWith  *[]string         `json:"sharedWith,omitempty"`
}

// List returns the caller's collections, most recently updated first.
func (s *CollectionService) List(ctx context.Context, ownerID string) ([]entities.Collection, error) {
	return s.collections.FindByOwner(ctx, ownerID)
}

// Create validates the input and stores a new collection owned by ownerID.
func (s *CollectionService) Create(ctx context.Context, ownerID string, input CreateCollectionInput) (*entities.Collection, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	collection, err := entities.NewCollection(ownerID, input.Name, input.Description)
	if err != nil {
		return nil, err
	}

	if len(input.Images) > 0 {
		collection.Images = input.Images
	}
	if input.Privacy != "" {
		collection.Privacy = input.Privacy
	}

	if err := s.collections.Create(ctx, collection); err != nil {
		return nil, err
	}

	s.logger.Info("collection created",
		zap.String("collectionID", collection.ID),
		zap.String("ownerID", ownerID),
	)

	return collection, nil
}

// Get fetches the caller's collection; absent and foreign-owned are both
// NotFound.
func (s *CollectionService) Get(ctx context.Context, id, ownerID string) (*entities.Collection, error) {
	return s.collections.FindOwned(ctx, id, ownerID)
}

// Update merges the supplied fields over the caller's collection and
// refreshes lastUpdated.
func (s *CollectionService) Update(ctx context.Context, id, ownerID string, input UpdateCollectionInput) (*entities.Collection, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	collection, err := s.collections.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, pkgerrors.NewValidationError("name is required")
		}
		collection.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, pkgerrors.NewValidationError("description is required")
		}
		collection.Description = strings.TrimSpace(*input.Description)
	}
	if input.Images != nil {
		collection.Images = *input.Images
	}
	if input.Privacy != nil {
		collection.Privacy = *input.Privacy
	}
	if input.SharedWith != nil {
		collection.SharedWith = *input.SharedWith
	}
	collection.Touch()

	if err := s.collections.Update(ctx, collection); err != nil {
		return nil, err
	}

	return collection, nil
}

// Delete removes the caller's collection.
func (s *CollectionService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.collections.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("collection deleted",
		zap.String("collectionID", id),
		zap.String("ownerID", ownerID),
	)
	return nil
}

// AddMemory appends a memory reference to the caller's collection. The
// collection must be owned by the caller and the memory must exist, but the
// memory itself is not ownership-checked. The append is idempotent: a
// memory already present is a silent no-op, never a duplicate entry.
func (s *CollectionService) AddMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error) {
	if memoryID == "" {
		return nil, pkgerrors.NewValidationError("memoryId is required")
	}

	// Confirm ownership before touching the membership list.
	if _, err := s.collections.FindOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}

	if _, err := s.memories.FindByID(ctx, memoryID); err != nil {
		return nil, err
	}

	// The two lookups and the write are not one atomic unit; the write
	// itself is a store-side set insert, so concurrent adds cannot
	// produce duplicates.
	return s.collections.AddMemory(ctx, id, ownerID, memoryID)
}

// RemoveMemory drops a memory reference from the caller's collection.
// Removing a reference that was never present succeeds and changes nothing.
func (s *CollectionService) RemoveMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error) {
	if _, err := s.collections.FindOwned(ctx, id, ownerID); err != nil {
		return nil, err
	}

	return s.collections.RemoveMemory(ctx, id, ownerID, memoryID)
}

package ports

import (
	"context"
	"time"

	"memoirbox-backend/domain/core/entities"
)

// MemoryFilter narrows an owner-scoped memory listing. Date bounds are
// inclusive; Tags match when a memory carries any of the given tags.
type MemoryFilter struct {
	Owner     string
	StartDate *time.Time
	EndDate   *time.Time
	Tags      []string
}

// MemoryRepository defines the interface for memory persistence.
// This is a port in hexagonal architecture - the services don't know about
// the implementation.
type MemoryRepository interface {
	// Create stores a new memory
	Create(ctx context.Context, memory *entities.Memory) error

	// FindByOwner retrieves the caller's memories matching the filter,
	// ordered by date descending
	FindByOwner(ctx context.Context, filter MemoryFilter) ([]entities.Memory, error)

	// FindPublic retrieves all public memories, ordered by createdAt
	// descending, with the public field projection applied
	FindPublic(ctx context.Context) ([]entities.Memory, error)

	// FindByID retrieves a memory by its ID regardless of owner
	FindByID(ctx context.Context, id string) (*entities.Memory, error)

	// FindOwned retrieves a memory only when it is owned by ownerID;
	// absent and foreign-owned records are both NotFound
	FindOwned(ctx context.Context, id, ownerID string) (*entities.Memory, error)

	// Update replaces an owned memory; NotFound when no (id, owner) match
	Update(ctx context.Context, memory *entities.Memory) error

	// Delete removes an owned memory; NotFound when no (id, owner) match
	Delete(ctx context.Context, id, ownerID string) error

	// ToggleLike flips userID's membership in the likes set with a single
	// store-side update and returns the resulting document
	ToggleLike(ctx context.Context, id, userID string) (*entities.Memory, error)

	// AppendComment atomically appends a comment and refreshes updatedAt,
	// returning the resulting document
	AppendComment(ctx context.Context, id string, comment entities.Comment) (*entities.Memory, error)
}

// CollectionRepository defines the interface for collection persistence
type CollectionRepository interface {
	// Create stores a new collection
	Create(ctx context.Context, collection *entities.Collection) error

	// FindByOwner retrieves the caller's collections, ordered by
	// lastUpdated descending
	FindByOwner(ctx context.Context, ownerID string) ([]entities.Collection, error)

	// FindOwned retrieves a collection only when owned by ownerID
	FindOwned(ctx context.Context, id, ownerID string) (*entities.Collection, error)

	// Update replaces an owned collection; NotFound when no match
	Update(ctx context.Context, collection *entities.Collection) error

	// Delete removes an owned collection; NotFound when no match
	Delete(ctx context.Context, id, ownerID string) error

	// AddMemory appends memoryID to the owned collection's memories set,
	// a silent no-op when already present, and refreshes lastUpdated
	AddMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error)

	// RemoveMemory removes memoryID from the owned collection's memories,
	// a no-op when absent, and refreshes lastUpdated
	RemoveMemory(ctx context.Context, id, ownerID, memoryID string) (*entities.Collection, error)
}

// TimelineCardRepository defines the interface for timeline card persistence
type TimelineCardRepository interface {
	// Create stores a new card
	Create(ctx context.Context, card *entities.TimelineCard) error

	// FindAll retrieves every card, ordered by date ascending
	FindAll(ctx context.Context) ([]entities.TimelineCard, error)
}

// UserDirectory resolves user references to display records for response
// expansion. Lookups are best-effort: unknown IDs simply come back absent.
type UserDirectory interface {
	// FindByID retrieves a single user record, nil when unknown
	FindByID(ctx context.Context, id string) (*entities.User, error)

	// FindByIDs retrieves the known subset of the given users, keyed by ID
	FindByIDs(ctx context.Context, ids []string) (map[string]entities.User, error)
}

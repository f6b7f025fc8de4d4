package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"memoirbox-backend/application/ports"
	"memoirbox-backend/domain/core/entities"
	pkgerrors "memoirbox-backend/pkg/errors"
	"memoirbox-backend/pkg/utils"
)

// MemoryService implements the memory CRUD and social-interaction
// operations. Every operation is a single atomic read or write against the
// document store; relationship updates (likes, comments) use store-side
// update expressions rather than read-modify-write cycles.
type MemoryService struct {
	memories ports.MemoryRepository
	users    ports.UserDirectory
	assets   ports.AssetStore
	logger   *zap.Logger
}

// NewMemoryService creates a new memory service
func NewMemoryService(
	memories ports.MemoryRepository,
	users ports.UserDirectory,
	assets ports.AssetStore,
	logger *zap.Logger,
) *MemoryService {
	return &MemoryService{
		memories: memories,
		users:    users,
		assets:   assets,
		logger:   logger,
	}
}

// CreateMemoryInput carries the validated fields for creating a memory
type CreateMemoryInput struct {
	Title       string              `json:"title" validate:"required"`
	Description string              `json:"description" validate:"required"`
	ImageURLs   []string            `json:"imageUrls" validate:"required,min=1,dive,required"`
	Location    *entities.GeoPoint  `json:"location,omitempty"`
	Date        time.Time           `json:"date" validate:"required"`
	Tags        []string            `json:"tags,omitempty"`
	Visibility  entities.Visibility `json:"visibility,omitempty" validate:"omitempty,oneof=private family public"`
}

// UpdateMemoryInput carries a partial update; nil fields are left untouched
type UpdateMemoryInput struct {
	Title       *string              `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string              `json:"description,omitempty" validate:"omitempty,min=1"`
	ImageURLs   *[]string            `json:"imageUrls,omitempty" validate:"omitempty,min=1,dive,required"`
	Location    *entities.GeoPoint   `json:"location,omitempty"`
	Date        *time.Time           `json:"date,omitempty"`
	Tags        *[]string            `json:"tags,omitempty"`
	Visibility  *entities.Visibility `json:"visibility,omitempty" validate:"omitempty,oneof=private family public"`
}

// ListMemoriesInput narrows the owner-scoped listing
type ListMemoriesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Tags      []string
}

// List returns the caller's memories, newest date first, with the owner
// reference expanded to a display name.
func (s *MemoryService) List(ctx context.Context, ownerID string, input ListMemoriesInput) ([]MemoryView, error) {
	filter := ports.MemoryFilter{
		Owner:     ownerID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Tags:      input.Tags,
	}

	memories, err := s.memories.FindByOwner(ctx, filter)
	if err != nil {
		return nil, err
	}

	return s.expand(ctx, memories, false)
}

// ListPublic returns every public memory regardless of owner, newest
// created first, with the fixed public projection.
func (s *MemoryService) ListPublic(ctx context.Context) ([]PublicMemoryView, error) {
	memories, err := s.memories.FindPublic(ctx)
	if err != nil {
		return nil, err
	}

	refs, err := s.userRefs(ctx, memories, false)
	if err != nil {
		return nil, err
	}

	views := make([]PublicMemoryView, 0, len(memories))
	for _, m := range memories {
		owner := refs[m.Owner]
		owner.Email = ""
		views = append(views, PublicMemoryView{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Date:        m.Date,
			ImageURLs:   m.ImageURLs,
			Tags:        m.Tags,
			Owner:       owner,
			CreatedAt:   m.CreatedAt,
		})
	}
	return views, nil
}

// Get fetches a single memory by ID with the owner expanded. Any
// authenticated caller may read any memory by ID; only listing is
// owner-scoped.
func (s *MemoryService) Get(ctx context.Context, id string) (*MemoryView, error) {
	memory, err := s.memories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	views, err := s.expand(ctx, []entities.Memory{*memory}, false)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create validates the input and stores a new memory owned by ownerID.
func (s *MemoryService) Create(ctx context.Context, ownerID string, input CreateMemoryInput) (*entities.Memory, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	memory, err := entities.NewMemory(ownerID, input.Title, input.Description, input.ImageURLs, input.Date)
	if err != nil {
		return nil, err
	}

	if input.Location != nil {
		memory.Location = *input.Location
	}
	if input.Visibility != "" {
		memory.Visibility = input.Visibility
	}
	memory.SetTags(input.Tags)

	if err := s.memories.Create(ctx, memory); err != nil {
		return nil, err
	}

	s.logger.Info("memory created",
		zap.String("memoryID", memory.ID),
		zap.String("ownerID", ownerID),
	)

	return memory, nil
}

// Update merges the supplied fields over the caller's memory. A memory that
// does not exist and one owned by someone else are indistinguishable: both
// are NotFound.
func (s *MemoryService) Update(ctx context.Context, id, ownerID string, input UpdateMemoryInput) (*entities.Memory, error) {
	if err := utils.ValidateStruct(input); err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	memory, err := s.memories.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, pkgerrors.NewValidationError("title is required")
		}
		memory.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, pkgerrors.NewValidationError("description is required")
		}
		memory.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURLs != nil {
		memory.ImageURLs = *input.ImageURLs
	}
	if input.Location != nil {
		memory.Location = *input.Location
	}
	if input.Date != nil {
		memory.Date = *input.Date
	}
	if input.Tags != nil {
		memory.SetTags(*input.Tags)
	}
	if input.Visibility != nil {
		memory.Visibility = *input.Visibility
	}
	memory.Touch()

	if err := s.memories.Update(ctx, memory); err != nil {
		return nil, err
	}

	return memory, nil
}

// Delete removes the caller's memory, NotFound when absent or foreign-owned.
func (s *MemoryService) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.memories.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.logger.Info("memory deleted",
		zap.String("memoryID", id),
		zap.String("ownerID", ownerID),
	)
	return nil
}

// ToggleLike flips the caller's like on a memory: present means remove,
// absent means add. The repository performs the flip as a store-side set
// operation, so repeated or concurrent toggles never accumulate duplicates.
// Not owner-scoped; any authenticated caller can like any memory.
func (s *MemoryService) ToggleLike(ctx context.Context, id, userID string) (*entities.Memory, error) {
	return s.memories.ToggleLike(ctx, id, userID)
}

// AddComment appends a comment authored by the caller. Comments are
// append-only: no edit or delete path exists. The response expands the
// memory owner and every comment author to {name, email}.
func (s *MemoryService) AddComment(ctx context.Context, id, authorID, text string) (*MemoryView, error) {
	if strings.TrimSpace(text) == "" {
		return nil, pkgerrors.NewValidationError("text is required")
	}

	comment := entities.Comment{
		Author:    authorID,
		Text:      strings.TrimSpace(text),
		CreatedAt: time.Now().UTC(),
	}

	memory, err := s.memories.AppendComment(ctx, id, comment)
	if err != nil {
		return nil, err
	}

	views, err := s.expand(ctx, []entities.Memory{*memory}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// UploadImage stores an image blob with the asset host and returns its
// durable URL and identifier. Non-image payloads are rejected before the
// asset store is ever contacted.
func (s *MemoryService) UploadImage(ctx context.Context, blob []byte, contentType string) (*ports.UploadResult, error) {
	return uploadImage(ctx, s.assets, blob, contentType, "memoirbox")
}

// expand builds response views with user references resolved through the
// directory. withEmail controls whether email addresses are exposed and
// whether comment authors are resolved too.
func (s *MemoryService) expand(ctx context.Context, memories []entities.Memory, withEmail bool) ([]MemoryView, error) {
	refs, err := s.userRefs(ctx, memories, withEmail)
	if err != nil {
		return nil, err
	}

	views := make([]MemoryView, 0, len(memories))
	for _, m := range memories {
		views = append(views, newMemoryView(m, refs, withEmail))
	}
	return views, nil
}

// userRefs resolves every user the given memories reference. Directory
// lookups are best-effort: unknown users stay bare IDs.
func (s *MemoryService) userRefs(ctx context.Context, memories []entities.Memory, withComments bool) (map[string]UserRef, error) {
	seen := make(map[string]struct{})
	ids := make([]string, 0, len(memories))
	add := func(id string) {
		if _, ok := seen[id]; !ok && id != "" {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	for _, m := range memories {
		add(m.Owner)
		if withComments {
			for _, c := range m.Comments {
				add(c.Author)
			}
		}
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	refs := make(map[string]UserRef, len(ids))
	for _, id := range ids {
		ref := UserRef{ID: id}
		if u, ok := users[id]; ok {
			ref.Name = u.Name
			ref.Email = u.Email
		}
		refs[id] = ref
	}
	return refs, nil
}

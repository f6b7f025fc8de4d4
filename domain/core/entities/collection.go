package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "memoirbox-backend/pkg/errors"
)

// Privacy controls who can see a collection.
type Privacy string

const (
	PrivacyPrivate Privacy = "private"
	PrivacyShared  Privacy = "shared"
	PrivacyPublic  Privacy = "public"
)

// IsValid reports whether p is one of the known privacy levels.
func (p Privacy) IsValid() bool {
	switch p {
	case PrivacyPrivate, PrivacyShared, PrivacyPublic:
		return true
	}
	return false
}

// Collection is a user-owned named grouping of memories. The Memories list
// holds memory IDs and never contains the same ID twice. The Images list is
// denormalized cover art, independent of the member memories' own images.
type Collection struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Images      []string  `bson:"images" json:"images"`
	Privacy     Privacy   `bson:"privacy" json:"privacy"`
	Owner       string    `bson:"owner" json:"owner"`
	Memories    []string  `bson:"memories" json:"memories"`
	SharedWith  []string  `bson:"sharedWith" json:"sharedWith"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// NewCollection creates a collection owned by ownerID.
func NewCollection(ownerID, name, description string) (*Collection, error) {
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("owner cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, pkgerrors.NewValidationError("name is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, pkgerrors.NewValidationError("description is required")
	}

	now := time.Now().UTC()
	return &Collection{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Images:      []string{},
		Privacy:     PrivacyPrivate,
		Owner:       ownerID,
		Memories:    []string{},
		SharedWith:  []string{},
		LastUpdated: now,
		CreatedAt:   now,
	}, nil
}

// Contains reports whether memoryID is already a member of the collection.
func (c *Collection) Contains(memoryID string) bool {
	for _, id := range c.Memories {
		if id == memoryID {
			return true
		}
	}
	return false
}

// Touch refreshes the LastUpdated timestamp.
func (c *Collection) Touch() {
	c.LastUpdated = time.Now().UTC()
}

package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "memoirbox-backend/pkg/errors"
)

// Visibility controls who can see a memory.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityFamily  Visibility = "family"
	VisibilityPublic  Visibility = "public"
)

// IsValid reports whether v is one of the known visibility levels.
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityPrivate, VisibilityFamily, VisibilityPublic:
		return true
	}
	return false
}

// GeoPoint is a GeoJSON point, stored so the document store can index it
// with a 2dsphere index. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

// OriginPoint returns the default location for memories created without one.
func OriginPoint() GeoPoint {
	return GeoPoint{Type: "Point"}
}

// Comment is a single append-only comment on a memory. Comments are never
// edited or deleted.
type Comment struct {
	Author    string    `bson:"author" json:"author"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Memory is a user-owned record of a personal moment: media, metadata and
// the social interactions attached to it. The owner never changes after
// creation, and the likes list never holds the same user twice.
type Memory struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	ImageURLs   []string   `bson:"imageUrls" json:"imageUrls"`
	Location    GeoPoint   `bson:"location" json:"location"`
	Date        time.Time  `bson:"date" json:"date"`
	Tags        []string   `bson:"tags" json:"tags"`
	Owner       string     `bson:"owner" json:"owner"`
	Visibility  Visibility `bson:"visibility" json:"visibility"`
	Likes       []string   `bson:"likes" json:"likes"`
	Comments    []Comment  `bson:"comments" json:"comments"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// NewMemory creates a memory owned by ownerID with business rule validation.
func NewMemory(ownerID, title, description string, imageURLs []string, date time.Time) (*Memory, error) {
	if ownerID == "" {
		return nil, pkgerrors.NewValidationError("owner cannot be empty")
	}
	if strings.TrimSpace(title) == "" {
		return nil, pkgerrors.NewValidationError("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, pkgerrors.NewValidationError("description is required")
	}
	if len(imageURLs) == 0 {
		return nil, pkgerrors.NewValidationError("imageUrls is required")
	}
	if date.IsZero() {
		return nil, pkgerrors.NewValidationError("date is required")
	}

	now := time.Now().UTC()
	return &Memory{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		ImageURLs:   imageURLs,
		Location:    OriginPoint(),
		Date:        date,
		Tags:        []string{},
		Owner:       ownerID,
		Visibility:  VisibilityPrivate,
		Likes:       []string{},
		Comments:    []Comment{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetTags replaces the tag list, trimming whitespace and dropping empties.
func (m *Memory) SetTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	m.Tags = cleaned
}

// IsLikedBy reports whether userID is present in the likes list.
func (m *Memory) IsLikedBy(userID string) bool {
	for _, id := range m.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Touch refreshes the UpdatedAt timestamp.
func (m *Memory) Touch() {
	m.UpdatedAt = time.Now().UTC()
}

package entities

import (
	"time"

	"github.com/google/uuid"

	pkgerrors "memoirbox-backend/pkg/errors"
)

// TimelineCard is a standalone published card for the public timeline view.
// Cards have no owner and are immutable once created.
type TimelineCard struct {
	ID          string    `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Date        time.Time `bson:"date" json:"date"`
	Type        string    `bson:"type" json:"type"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// NewTimelineCard creates a timeline card. The image URL is the only field
// the surface insists on.
func NewTimelineCard(title string, date time.Time, cardType, description, imageURL string) (*TimelineCard, error) {
	if imageURL == "" {
		return nil, pkgerrors.NewValidationError("Image URL is required")
	}

	return &TimelineCard{
		ID:          uuid.New().String(),
		Title:       title,
		Date:        date,
		Type:        cardType,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

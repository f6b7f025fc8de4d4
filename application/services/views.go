package services

import (
	"time"

	"memoirbox-backend/domain/core/entities"
)

// UserRef is an expanded user reference embedded in responses. Name and
// Email are filled only as far as the operation's projection allows.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// CommentView is a comment with its author reference expanded
type CommentView struct {
	Author    UserRef   `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemoryView is the full memory response shape with expanded references
type MemoryView struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	ImageURLs   []string            `json:"imageUrls"`
	Location    entities.GeoPoint   `json:"location"`
	Date        time.Time           `json:"date"`
	Tags        []string            `json:"tags"`
	Owner       UserRef             `json:"owner"`
	Visibility  entities.Visibility `json:"visibility"`
	Likes       []string            `json:"likes"`
	Comments    []CommentView       `json:"comments"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// PublicMemoryView is the fixed projection returned by the public listing
type PublicMemoryView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	ImageURLs   []string  `json:"imageUrls"`
	Tags        []string  `json:"tags"`
	Owner       UserRef   `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// newMemoryView builds a MemoryView from an entity and a resolved reference
// map. withEmail exposes email addresses and resolves comment authors; the
// name-only projection keeps comment authors as bare IDs.
func newMemoryView(m entities.Memory, refs map[string]UserRef, withEmail bool) MemoryView {
	comments := make([]CommentView, 0, len(m.Comments))
	for _, c := range m.Comments {
		author := UserRef{ID: c.Author}
		if withEmail {
			if ref, ok := refs[c.Author]; ok {
				author = ref
			}
		}
		comments = append(comments, CommentView{
			Author:    author,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		})
	}

	owner := refs[m.Owner]
	if !withEmail {
		owner.Email = ""
	}

	return MemoryView{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURLs:   m.ImageURLs,
		Location:    m.Location,
		Date:        m.Date,
		Tags:        m.Tags,
		Owner:       owner,
		Visibility:  m.Visibility,
		Likes:       m.Likes,
		Comments:    comments,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

package entities

import "time"

// Post is a free-text entry owned by exactly one user. Posts are created
// and deleted, never updated in place.
type Post struct {
	ID        uint
	CreatedAt time.Time
	Text      string
	OwnerID   uint
}

func NewPost(text string, ownerID uint) *Post {
	return &Post{
		CreatedAt: time.Now(),
		Text:      text,
		OwnerID:   ownerID,
	}
}

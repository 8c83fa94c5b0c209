package models

import (
	"time"

	"github.com/google/uuid"
)

// PostDB represents a text post in the database
type PostDB struct {
	PostID    uuid.UUID `json:"post_id" db:"post_id"`       // Primary key
	AuthorID  uuid.UUID `json:"author_id" db:"author_id"`   // Owning user
	Body      string    `json:"body" db:"body"`             // Post text
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp, feed sort key
}

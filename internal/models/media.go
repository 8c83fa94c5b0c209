package models

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind selects between the two uploadable media types.
type MediaKind string

const (
	MediaTrack MediaKind = "track"
	MediaVideo MediaKind = "video"
)

// MediaDB represents an uploaded track or video. Tracks and videos share a
// shape; only the table and the counter name differ. Titles are unique per
// kind and act as the user-facing lookup key.
type MediaDB struct {
	ID          uuid.UUID `json:"id" db:"id"`                   // Primary key
	AuthorID    uuid.UUID `json:"author_id" db:"author_id"`     // Owning user (artist)
	Title       string    `json:"title" db:"title"`             // Unique within the kind
	Description string    `json:"description" db:"description"` // Up to 512 characters
	Filename    string    `json:"filename" db:"filename"`       // Object name in media storage
	Plays       int64     `json:"plays" db:"plays"`             // Listens for tracks, views for videos
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp, feed sort key
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// FollowDB represents a directed follower -> followee edge.
// The (follower_id, followee_id) pair is the primary key, which makes
// a repeated follow a no-op instead of a duplicate row.
type FollowDB struct {
	FollowerID uuid.UUID `json:"follower_id" db:"follower_id"` // User who follows
	FolloweeID uuid.UUID `json:"followee_id" db:"followee_id"` // User being followed
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // When the edge was created
}

package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zodin-dev/symphony/internal/logger"
)

type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// FolloweeIDs returns the ids of every user the given user follows, plus the
// user itself. The explicit self union is what makes feeds always contain the
// viewer's own content.
func (r *FollowReadRepository) FolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT followee_id FROM follows WHERE follower_id = $1
		UNION
		SELECT $1::UUID
	`

	var ids []uuid.UUID
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &ids, query, userID)
	if err != nil {
		logger.Log.Errorw("failed to list followees", "user_id", userID, "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *FollowReadRepository) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, followerID, followeeID)
	if err != nil {
		logger.Log.Errorw("failed to check follow edge", "follower_id", followerID, "followee_id", followeeID, "error", err)
		return false, err
	}
	return exists, nil
}

type FollowWriteRepository struct {
	db *sqlx.DB
}

func NewFollowWriteRepository(db *sqlx.DB) *FollowWriteRepository {
	return &FollowWriteRepository{db: db}
}

// Save creates the follow edge. The pair primary key is the concurrency
// guard: a repeated or concurrent follow of the same pair is a silent no-op.
func (r *FollowWriteRepository) Save(ctx context.Context, followerID, followeeID uuid.UUID) error {
	const query = `
		INSERT INTO follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`
	args := []any{followerID, followeeID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the follow edge. Deleting an absent edge is a no-op.
func (r *FollowWriteRepository) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		logger.Log.Errorw("failed to delete follow edge", "follower_id", followerID, "followee_id", followeeID, "error", err)
	}
	return err
}

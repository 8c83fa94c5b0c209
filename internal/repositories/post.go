package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// ListByAuthors returns posts whose author is in authorIDs, most recent
// first. Ties on created_at break on post_id so page boundaries are stable.
func (r *PostReadRepository) ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]models.PostDB, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT post_id, author_id, body, created_at
		FROM posts
		WHERE author_id IN (?)
		ORDER BY created_at DESC, post_id DESC
		OFFSET ? LIMIT ?
	`, authorIDs, offset, limit)
	if err != nil {
		return nil, err
	}

	e := ext(ctx, r.db)
	query = e.Rebind(query)

	var posts []models.PostDB
	if err := sqlx.SelectContext(ctx, e, &posts, query, args...); err != nil {
		logger.Log.Errorw("failed to list posts", "authors", len(authorIDs), "error", err)
		return nil, err
	}
	return posts, nil
}

type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

func (r *PostWriteRepository) Save(ctx context.Context, authorID uuid.UUID, body string) (uuid.UUID, error) {
	const query = `
		INSERT INTO posts (post_id, author_id, body, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING post_id
	`
	postID := uuid.New()
	args := []any{postID, authorID, body}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return saved, nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, about_me, last_seen, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NOT NULL AND username = $1)
		   OR ($2::VARCHAR IS NOT NULL AND email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, username, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, about_me, last_seen, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("failed to get user by username", "username", username, "error", err)
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, about_me, last_seen, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Log.Errorw("failed to get user by id", "user_id", userID, "error", err)
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at, last_seen)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), NOW())
		RETURNING user_id
	`
	userID := uuid.New()
	args := []any{userID, username, email, passwordHash}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username, email},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return saved, nil
}

func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, username, aboutMe string) error {
	const query = `
		UPDATE users
		SET username = $2, about_me = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID, username, aboutMe)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
	}
	return err
}

func (r *UserWriteRepository) TouchLastSeen(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_seen = NOW() WHERE user_id = $1`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	return err
}

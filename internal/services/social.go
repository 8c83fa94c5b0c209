package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

// Error variables
var (
	ErrUserNotFound = errors.New("user not found")
	ErrSelfFollow   = errors.New("cannot follow yourself")
)

// UserResolver resolves usernames to user records.
type UserResolver interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// FollowWriter defines write operations on follow edges.
type FollowWriter interface {
	Save(ctx context.Context, followerID, followeeID uuid.UUID) error
	Delete(ctx context.Context, followerID, followeeID uuid.UUID) error
}

// FollowCacheInvalidator drops a user's cached followee set.
type FollowCacheInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// SocialService maintains the follower graph.
type SocialService struct {
	users  UserResolver
	writer FollowWriter
	cache  FollowCacheInvalidator
}

// NewSocialService creates a new SocialService instance.
func NewSocialService(users UserResolver, writer FollowWriter, cache FollowCacheInvalidator) *SocialService {
	return &SocialService{
		users:  users,
		writer: writer,
		cache:  cache,
	}
}

// Follow creates the follower -> target edge. Following an already-followed
// user succeeds silently; following yourself is rejected.
func (svc *SocialService) Follow(ctx context.Context, followerID uuid.UUID, targetUsername string) error {
	target, err := svc.users.GetByUsername(ctx, targetUsername)
	if err != nil {
		logger.Log.Errorw("failed to resolve follow target", "username", targetUsername, "err", err)
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.UserID == followerID {
		return ErrSelfFollow
	}

	if err := svc.writer.Save(ctx, followerID, target.UserID); err != nil {
		logger.Log.Errorw("failed to save follow edge", "follower_id", followerID, "followee_id", target.UserID, "err", err)
		return err
	}

	svc.invalidate(ctx, followerID)
	return nil
}

// Unfollow removes the follower -> target edge. Unfollowing a user that was
// never followed is a no-op.
func (svc *SocialService) Unfollow(ctx context.Context, followerID uuid.UUID, targetUsername string) error {
	target, err := svc.users.GetByUsername(ctx, targetUsername)
	if err != nil {
		logger.Log.Errorw("failed to resolve unfollow target", "username", targetUsername, "err", err)
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.UserID == followerID {
		return ErrSelfFollow
	}

	if err := svc.writer.Delete(ctx, followerID, target.UserID); err != nil {
		logger.Log.Errorw("failed to delete follow edge", "follower_id", followerID, "followee_id", target.UserID, "err", err)
		return err
	}

	svc.invalidate(ctx, followerID)
	return nil
}

// invalidate drops the cached followee set. A failed invalidation only
// delays feed freshness until the TTL, so it is logged and swallowed.
func (svc *SocialService) invalidate(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Errorw("failed to invalidate followee cache", "user_id", userID, "err", err)
	}
}

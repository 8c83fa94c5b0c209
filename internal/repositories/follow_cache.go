package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/zodin-dev/symphony/internal/logger"
)

// FollowCacheRepository caches per-user followee id sets in Redis. The feed
// composer reads through it; follow and unfollow invalidate it.
type FollowCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached followee sets
}

// NewFollowCacheRepository creates a new repository instance with the given TTL
func NewFollowCacheRepository(client *redis.Client, expiration time.Duration) *FollowCacheRepository {
	return &FollowCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func followeesKey(userID uuid.UUID) string {
	return fmt.Sprintf("followees:%s", userID)
}

// GetFolloweeIDs fetches a cached followee set. Returns an error on a miss.
func (r *FollowCacheRepository) GetFolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	key := followeesKey(userID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("followee set not found in cache for %s", userID)
		}
		logger.Log.Errorw("failed to read followee cache", "key", key, "error", err)
		return nil, err
	}

	parts := strings.Split(val, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// SetFolloweeIDs caches a followee set with expiration
func (r *FollowCacheRepository) SetFolloweeIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	key := followeesKey(userID)

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	err := r.client.Set(ctx, key, strings.Join(parts, ","), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"size", len(ids),
		"error", err,
	)

	return err
}

// Invalidate drops the cached followee set after a follow or unfollow
func (r *FollowCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return r.client.Del(ctx, followeesKey(userID)).Err()
}

package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

// FolloweeReader returns the set of authors visible to a user: everyone the
// user follows plus the user itself.
type FolloweeReader interface {
	FolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// FolloweeCache caches followee sets.
type FolloweeCache interface {
	GetFolloweeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	SetFolloweeIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
}

// PostLister lists posts by author set.
type PostLister interface {
	ListByAuthors(ctx context.Context, authorIDs []uuid.UUID, offset, limit int) ([]models.PostDB, error)
}

// MediaLister lists tracks or videos by author set.
type MediaLister interface {
	ListByAuthors(ctx context.Context, kind models.MediaKind, authorIDs []uuid.UUID, offset, limit int) ([]models.MediaDB, error)
}

// FeedService composes the paginated, time-ordered feeds: home posts, new
// music and new videos, plus the per-author profile pages.
type FeedService struct {
	follows      FolloweeReader
	cache        FolloweeCache
	posts        PostLister
	media        MediaLister
	users        UserResolver
	postsPerPage int
	mediaPerPage int
}

// NewFeedService creates a new FeedService instance. Page sizes come from
// configuration; cache may be nil.
func NewFeedService(follows FolloweeReader, cache FolloweeCache, posts PostLister, media MediaLister, users UserResolver, postsPerPage, mediaPerPage int) *FeedService {
	if postsPerPage < 1 {
		postsPerPage = 10
	}
	if mediaPerPage < 1 {
		mediaPerPage = 5
	}
	return &FeedService{
		follows:      follows,
		cache:        cache,
		posts:        posts,
		media:        media,
		users:        users,
		postsPerPage: postsPerPage,
		mediaPerPage: mediaPerPage,
	}
}

// Posts returns one page of the user's home feed.
func (svc *FeedService) Posts(ctx context.Context, userID uuid.UUID, page int) ([]models.PostDB, bool, bool, error) {
	if page < 1 {
		return nil, false, false, nil
	}

	authors, err := svc.visibleAuthors(ctx, userID)
	if err != nil {
		return nil, false, false, err
	}

	items, err := svc.posts.ListByAuthors(ctx, authors, (page-1)*svc.postsPerPage, svc.postsPerPage+1)
	if err != nil {
		return nil, false, false, err
	}

	items, hasNext, hasPrev := trimPage(items, page, svc.postsPerPage)
	return items, hasNext, hasPrev, nil
}

// Music returns one page of the user's followed-tracks feed.
func (svc *FeedService) Music(ctx context.Context, userID uuid.UUID, page int) ([]models.MediaDB, bool, bool, error) {
	return svc.mediaFeed(ctx, userID, models.MediaTrack, page)
}

// Videos returns one page of the user's followed-videos feed.
func (svc *FeedService) Videos(ctx context.Context, userID uuid.UUID, page int) ([]models.MediaDB, bool, bool, error) {
	return svc.mediaFeed(ctx, userID, models.MediaVideo, page)
}

func (svc *FeedService) mediaFeed(ctx context.Context, userID uuid.UUID, kind models.MediaKind, page int) ([]models.MediaDB, bool, bool, error) {
	if page < 1 {
		return nil, false, false, nil
	}

	authors, err := svc.visibleAuthors(ctx, userID)
	if err != nil {
		return nil, false, false, err
	}

	items, err := svc.media.ListByAuthors(ctx, kind, authors, (page-1)*svc.mediaPerPage, svc.mediaPerPage+1)
	if err != nil {
		return nil, false, false, err
	}

	items, hasNext, hasPrev := trimPage(items, page, svc.mediaPerPage)
	return items, hasNext, hasPrev, nil
}

// PostsByUser returns one page of a single author's posts.
func (svc *FeedService) PostsByUser(ctx context.Context, username string, page int) ([]models.PostDB, bool, bool, error) {
	author, err := svc.resolve(ctx, username)
	if err != nil {
		return nil, false, false, err
	}
	if page < 1 {
		return nil, false, false, nil
	}

	items, err := svc.posts.ListByAuthors(ctx, []uuid.UUID{author}, (page-1)*svc.postsPerPage, svc.postsPerPage+1)
	if err != nil {
		return nil, false, false, err
	}

	items, hasNext, hasPrev := trimPage(items, page, svc.postsPerPage)
	return items, hasNext, hasPrev, nil
}

// MusicByUser returns one page of a single artist's tracks.
func (svc *FeedService) MusicByUser(ctx context.Context, username string, page int) ([]models.MediaDB, bool, bool, error) {
	return svc.mediaByUser(ctx, username, models.MediaTrack, page)
}

// VideosByUser returns one page of a single artist's videos.
func (svc *FeedService) VideosByUser(ctx context.Context, username string, page int) ([]models.MediaDB, bool, bool, error) {
	return svc.mediaByUser(ctx, username, models.MediaVideo, page)
}

func (svc *FeedService) mediaByUser(ctx context.Context, username string, kind models.MediaKind, page int) ([]models.MediaDB, bool, bool, error) {
	author, err := svc.resolve(ctx, username)
	if err != nil {
		return nil, false, false, err
	}
	if page < 1 {
		return nil, false, false, nil
	}

	items, err := svc.media.ListByAuthors(ctx, kind, []uuid.UUID{author}, (page-1)*svc.mediaPerPage, svc.mediaPerPage+1)
	if err != nil {
		return nil, false, false, err
	}

	items, hasNext, hasPrev := trimPage(items, page, svc.mediaPerPage)
	return items, hasNext, hasPrev, nil
}

func (svc *FeedService) resolve(ctx context.Context, username string) (uuid.UUID, error) {
	user, err := svc.users.GetByUsername(ctx, username)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, ErrUserNotFound
	}
	return user.UserID, nil
}

// visibleAuthors reads the followee set through the cache. A cache miss or
// failure falls back to the database; repopulating the cache is best effort.
func (svc *FeedService) visibleAuthors(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if svc.cache != nil {
		if ids, err := svc.cache.GetFolloweeIDs(ctx, userID); err == nil {
			return ids, nil
		}
	}

	ids, err := svc.follows.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetFolloweeIDs(ctx, userID, ids); err != nil {
			logger.Log.Errorw("failed to populate followee cache", "user_id", userID, "err", err)
		}
	}

	return ids, nil
}

// trimPage turns a size+1 query result into one page plus pagination flags.
// Pages past the end are empty with both flags off, never an error.
func trimPage[T any](items []T, page, size int) ([]T, bool, bool) {
	hasNext := len(items) > size
	if hasNext {
		items = items[:size]
	}
	hasPrev := page > 1 && len(items) > 0
	return items, hasNext, hasPrev
}

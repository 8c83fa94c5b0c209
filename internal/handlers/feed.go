package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
)

// FeedPager defines the interface that the feed service must implement.
type FeedPager interface {
	Posts(ctx context.Context, userID uuid.UUID, page int) ([]models.PostDB, bool, bool, error)
	Music(ctx context.Context, userID uuid.UUID, page int) ([]models.MediaDB, bool, bool, error)
	Videos(ctx context.Context, userID uuid.UUID, page int) ([]models.MediaDB, bool, bool, error)
}

// PostsFeedResponse represents one page of the home feed
// swagger:model PostsFeedResponse
type PostsFeedResponse struct {
	// Page items, most recent first
	Posts []models.PostDB `json:"posts"`

	// Next page number, absent on the last page
	NextPage *int `json:"next_page"`

	// Previous page number, absent on the first page
	PrevPage *int `json:"prev_page"`
}

// MediaFeedResponse represents one page of the music or video feed
// swagger:model MediaFeedResponse
type MediaFeedResponse struct {
	// Page items, most recent first
	Items []models.MediaDB `json:"items"`

	// Next page number, absent on the last page
	NextPage *int `json:"next_page"`

	// Previous page number, absent on the first page
	PrevPage *int `json:"prev_page"`
}

// FeedErrorResponse represents an error response for feed pages
// swagger:model FeedErrorResponse
type FeedErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// pageParam reads the ?page= query parameter, defaulting to 1.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return page
}

// pageLinks converts pagination flags into next/prev page numbers.
func pageLinks(page int, hasNext, hasPrev bool) (next, prev *int) {
	if hasNext {
		n := page + 1
		next = &n
	}
	if hasPrev {
		p := page - 1
		prev = &p
	}
	return next, prev
}

// NewPostsFeedHandler returns an HTTP handler for the home post feed.
// @Summary Home feed
// @Description Returns one page of posts from followed users and the viewer, most recent first.
// @Tags feed
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} handlers.PostsFeedResponse "Feed page"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feed/posts [get]
func NewPostsFeedHandler(svc FeedPager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		userID := middlewares.GetUserIDFromContext(r.Context())

		posts, hasNext, hasPrev, err := svc.Posts(r.Context(), userID, page)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedErrorResponse{Error: "Internal server error"})
			return
		}

		next, prev := pageLinks(page, hasNext, hasPrev)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostsFeedResponse{
			Posts:    posts,
			NextPage: next,
			PrevPage: prev,
		})
	}
}

// NewMusicFeedHandler returns an HTTP handler for the new-music feed.
// @Summary New music feed
// @Description Returns one page of tracks from followed artists and the viewer, most recent first.
// @Tags feed
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} handlers.MediaFeedResponse "Feed page"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feed/music [get]
func NewMusicFeedHandler(svc FeedPager) http.HandlerFunc {
	return newMediaFeedHandler(svc.Music)
}

// NewVideosFeedHandler returns an HTTP handler for the new-videos feed.
// @Summary New videos feed
// @Description Returns one page of videos from followed artists and the viewer, most recent first.
// @Tags feed
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} handlers.MediaFeedResponse "Feed page"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /feed/videos [get]
func NewVideosFeedHandler(svc FeedPager) http.HandlerFunc {
	return newMediaFeedHandler(svc.Videos)
}

func newMediaFeedHandler(fetch func(ctx context.Context, userID uuid.UUID, page int) ([]models.MediaDB, bool, bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		userID := middlewares.GetUserIDFromContext(r.Context())

		items, hasNext, hasPrev, err := fetch(r.Context(), userID, page)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedErrorResponse{Error: "Internal server error"})
			return
		}

		next, prev := pageLinks(page, hasNext, hasPrev)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MediaFeedResponse{
			Items:    items,
			NextPage: next,
			PrevPage: prev,
		})
	}
}

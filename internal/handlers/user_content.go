package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

// AuthorPager defines the interface that the feed service must implement for
// single-author pages.
type AuthorPager interface {
	PostsByUser(ctx context.Context, username string, page int) ([]models.PostDB, bool, bool, error)
	MusicByUser(ctx context.Context, username string, page int) ([]models.MediaDB, bool, bool, error)
	VideosByUser(ctx context.Context, username string, page int) ([]models.MediaDB, bool, bool, error)
}

// NewUserPostsHandler returns an HTTP handler for a single author's posts.
// @Summary User posts
// @Description Returns one page of a user's posts, most recent first.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} handlers.PostsFeedResponse "Page of posts"
// @Failure 404 {object} handlers.FeedErrorResponse "User not found"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/{username}/posts [get]
func NewUserPostsHandler(svc AuthorPager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		username := chi.URLParam(r, "username")

		posts, hasNext, hasPrev, err := svc.PostsByUser(r.Context(), username, page)
		if err != nil {
			writeUserContentError(w, err)
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

// NewUserMusicHandler returns an HTTP handler for a single artist's tracks.
// @Summary User music
// @Description Returns one page of a user's uploaded tracks, most recent first.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} handlers.MediaFeedResponse "Page of tracks"
// @Failure 404 {object} handlers.FeedErrorResponse "User not found"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Router /users/{username}/music [get]
func NewUserMusicHandler(svc AuthorPager) http.HandlerFunc {
	return newUserMediaHandler(svc.MusicByUser)
}

// NewUserVideosHandler returns an HTTP handler for a single artist's videos.
// @Summary User videos
// @Description Returns one page of a user's uploaded videos, most recent first.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} handlers.MediaFeedResponse "Page of videos"
// @Failure 404 {object} handlers.FeedErrorResponse "User not found"
// @Failure 500 {object} handlers.FeedErrorResponse "Internal server error"
// @Router /users/{username}/videos [get]
func NewUserVideosHandler(svc AuthorPager) http.HandlerFunc {
	return newUserMediaHandler(svc.VideosByUser)
}

func newUserMediaHandler(fetch func(ctx context.Context, username string, page int) ([]models.MediaDB, bool, bool, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)
		username := chi.URLParam(r, "username")

		items, hasNext, hasPrev, err := fetch(r.Context(), username, page)
		if err != nil {
			writeUserContentError(w, err)
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

func writeUserContentError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrUserNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(FeedErrorResponse{Error: "User not found"})
		return
	}
	logger.Log.Errorw("internal server error", "err", err)
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(FeedErrorResponse{Error: "Internal server error"})
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

// MediaDeleter defines the interface that the content service must implement
// for removal.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, kind models.MediaKind, title string, requesterID uuid.UUID) error
}

// DeleteErrorResponse represents an error response for media removal
// swagger:model DeleteErrorResponse
type DeleteErrorResponse struct {
	// Error message
	// example: Track not found
	Error string `json:"error"`
}

// NewDeleteMusicHandler returns an HTTP handler that removes a track.
// @Summary Delete a track
// @Description Removes a track owned by the authenticated user, including its stored file.
// @Tags content
// @Produce json
// @Param title path string true "Track title"
// @Success 204 "Track deleted"
// @Failure 403 {object} handlers.DeleteErrorResponse "Not the owner"
// @Failure 404 {object} handlers.DeleteErrorResponse "Track not found"
// @Failure 500 {object} handlers.DeleteErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /music/{title} [delete]
func NewDeleteMusicHandler(svc MediaDeleter) http.HandlerFunc {
	return newDeleteHandler(svc, models.MediaTrack, "Track not found")
}

// NewDeleteVideoHandler returns an HTTP handler that removes a video.
// @Summary Delete a video
// @Description Removes a video owned by the authenticated user, including its stored file.
// @Tags content
// @Produce json
// @Param title path string true "Video title"
// @Success 204 "Video deleted"
// @Failure 403 {object} handlers.DeleteErrorResponse "Not the owner"
// @Failure 404 {object} handlers.DeleteErrorResponse "Video not found"
// @Failure 500 {object} handlers.DeleteErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /videos/{title} [delete]
func NewDeleteVideoHandler(svc MediaDeleter) http.HandlerFunc {
	return newDeleteHandler(svc, models.MediaVideo, "Video not found")
}

func newDeleteHandler(svc MediaDeleter, kind models.MediaKind, notFound string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := chi.URLParam(r, "title")
		requesterID := middlewares.GetUserIDFromContext(r.Context())

		err := svc.DeleteMedia(r.Context(), kind, title, requesterID)
		switch {
		case errors.Is(err, services.ErrMediaNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Error: notFound})
			return
		case errors.Is(err, services.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Error: "You can only delete your own uploads"})
			return
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

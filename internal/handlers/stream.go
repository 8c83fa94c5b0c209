package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

// contentTypes maps the supported upload extensions to their MIME types. The
// system mime table is consulted only for anything outside this set.
var contentTypes = map[string]string{
	".wav":  "audio/wav",
	".mp3":  "audio/mpeg",
	".flac": "audio/flac",
	".ogg":  "audio/ogg",
	".mp4":  "video/mp4",
	".webm": "video/webm",
}

// MediaStreamer defines the interface that the content service must implement
// for playback.
type MediaStreamer interface {
	Stream(ctx context.Context, kind models.MediaKind, title string, viewerID uuid.UUID) (io.ReadCloser, *models.MediaDB, error)
}

// StreamErrorResponse represents an error response for playback
// swagger:model StreamErrorResponse
type StreamErrorResponse struct {
	// Error message
	// example: Track not found
	Error string `json:"error"`
}

// NewListenHandler returns an HTTP handler that streams a track by title.
// @Summary Listen to a track
// @Description Streams the audio file and counts a listen unless the viewer is the artist.
// @Tags content
// @Produce octet-stream
// @Param title path string true "Track title"
// @Success 200 {file} file "Audio stream"
// @Failure 404 {object} handlers.StreamErrorResponse "Track not found"
// @Failure 500 {object} handlers.StreamErrorResponse "Internal server error"
// @Router /listen/{title} [get]
func NewListenHandler(svc MediaStreamer) http.HandlerFunc {
	return newStreamHandler(svc, models.MediaTrack, "Track not found")
}

// NewWatchHandler returns an HTTP handler that streams a video by title.
// @Summary Watch a video
// @Description Streams the video file and counts a view unless the viewer is the artist.
// @Tags content
// @Produce octet-stream
// @Param title path string true "Video title"
// @Success 200 {file} file "Video stream"
// @Failure 404 {object} handlers.StreamErrorResponse "Video not found"
// @Failure 500 {object} handlers.StreamErrorResponse "Internal server error"
// @Router /watch/{title} [get]
func NewWatchHandler(svc MediaStreamer) http.HandlerFunc {
	return newStreamHandler(svc, models.MediaVideo, "Video not found")
}

func newStreamHandler(svc MediaStreamer, kind models.MediaKind, notFound string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		title := chi.URLParam(r, "title")
		viewerID := middlewares.GetUserIDFromContext(r.Context())

		object, item, err := svc.Stream(r.Context(), kind, title, viewerID)
		switch {
		case errors.Is(err, services.ErrMediaNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(StreamErrorResponse{Error: notFound})
			return
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StreamErrorResponse{Error: "Internal server error"})
			return
		}
		defer object.Close()

		ext := strings.ToLower(filepath.Ext(item.Filename))
		contentType, ok := contentTypes[ext]
		if !ok {
			contentType = mime.TypeByExtension(ext)
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)

		if _, err := io.Copy(w, object); err != nil {
			logger.Log.Errorw("stream copy failed", "title", title, "err", err)
		}
	}
}

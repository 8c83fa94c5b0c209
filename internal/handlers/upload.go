package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

// maxUploadBytes bounds in-flight multipart uploads.
const maxUploadBytes = 512 << 20

// MediaCreator defines the interface that the content service must implement
// for uploads.
type MediaCreator interface {
	CreateMedia(ctx context.Context, kind models.MediaKind, authorID uuid.UUID, title, description, filename string, data io.Reader, size int64, contentType string) (uuid.UUID, error)
}

// UploadResponse represents a successful media upload
// swagger:model UploadResponse
type UploadResponse struct {
	// Identifier of the created track or video
	ID uuid.UUID `json:"id"`

	// Title as stored
	Title string `json:"title"`
}

// UploadErrorResponse represents an error response for uploads
// swagger:model UploadErrorResponse
type UploadErrorResponse struct {
	// Error message
	// example: Title already taken
	Error string `json:"error"`
}

// NewUploadMusicHandler returns an HTTP handler for uploading a track.
// @Summary Upload music
// @Description Uploads an audio file (wav, mp3, flac, ogg) with a unique title.
// @Tags content
// @Accept mpfd
// @Produce json
// @Param title formData string true "Track title"
// @Param description formData string false "Track description"
// @Param upload formData file true "Audio file"
// @Success 201 {object} handlers.UploadResponse "Track created"
// @Failure 400 {object} handlers.UploadErrorResponse "Validation error"
// @Failure 409 {object} handlers.UploadErrorResponse "Title already taken"
// @Failure 500 {object} handlers.UploadErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upload/music [post]
func NewUploadMusicHandler(svc MediaCreator) http.HandlerFunc {
	return newUploadHandler(svc, models.MediaTrack)
}

// NewUploadVideoHandler returns an HTTP handler for uploading a video.
// @Summary Upload video
// @Description Uploads a video file (mp4, webm) with a unique title.
// @Tags content
// @Accept mpfd
// @Produce json
// @Param title formData string true "Video title"
// @Param description formData string false "Video description"
// @Param upload formData file true "Video file"
// @Success 201 {object} handlers.UploadResponse "Video created"
// @Failure 400 {object} handlers.UploadErrorResponse "Validation error"
// @Failure 409 {object} handlers.UploadErrorResponse "Title already taken"
// @Failure 500 {object} handlers.UploadErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /upload/videos [post]
func NewUploadVideoHandler(svc MediaCreator) http.HandlerFunc {
	return newUploadHandler(svc, models.MediaVideo)
}

func newUploadHandler(svc MediaCreator, kind models.MediaKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "invalid multipart form"})
			return
		}

		title := r.FormValue("title")
		description := r.FormValue("description")

		file, header, err := r.FormFile("upload")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "upload file is required"})
			return
		}
		defer file.Close()

		authorID := middlewares.GetUserIDFromContext(r.Context())
		filename := filepath.Base(header.Filename)
		contentType := header.Header.Get("Content-Type")

		id, err := svc.CreateMedia(r.Context(), kind, authorID, title, description, filename, file, header.Size, contentType)
		switch {
		case errors.Is(err, services.ErrTitleRequired):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Title is required"})
			return
		case errors.Is(err, services.ErrDescriptionTooLong):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Description must not exceed 512 characters"})
			return
		case errors.Is(err, services.ErrInvalidFileType):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Unsupported file type"})
			return
		case errors.Is(err, services.ErrDuplicateTitle):
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Title already taken"})
			return
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadResponse{ID: id, Title: title})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/services"
)

// PostCreator defines the interface that the content service must implement
// for post creation.
type PostCreator interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, body string) (uuid.UUID, error)
}

// CreatePostRequest represents a new text post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// Post body
	// required: true
	// example: shipping a new track tonight
	Body string `json:"body"`
}

// CreatePostResponse represents a successful post creation
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	// Identifier of the created post
	PostID uuid.UUID `json:"post_id"`
}

// CreatePostErrorResponse represents an error response for post creation
// swagger:model CreatePostErrorResponse
type CreatePostErrorResponse struct {
	// Error message
	// example: Post body is required
	Error string `json:"error"`
}

// NewCreatePostHandler returns an HTTP handler for publishing a text post.
// @Summary Publish a post
// @Description Publishes a text post to the author's followers.
// @Tags posts
// @Accept json
// @Produce json
// @Param request body handlers.CreatePostRequest true "Post body"
// @Success 201 {object} handlers.CreatePostResponse "Post created"
// @Failure 400 {object} handlers.CreatePostErrorResponse "Empty body"
// @Failure 500 {object} handlers.CreatePostErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /posts [post]
func NewCreatePostHandler(svc PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "invalid request body"})
			return
		}

		authorID := middlewares.GetUserIDFromContext(r.Context())

		postID, err := svc.CreatePost(r.Context(), authorID, req.Body)
		switch {
		case errors.Is(err, services.ErrBodyRequired):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "Post body is required"})
			return
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(CreatePostErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreatePostResponse{PostID: postID})
	}
}

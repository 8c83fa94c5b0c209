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
	"github.com/zodin-dev/symphony/internal/services"
)

// Follower defines the interface that the social service must implement.
type Follower interface {
	Follow(ctx context.Context, followerID uuid.UUID, targetUsername string) error
	Unfollow(ctx context.Context, followerID uuid.UUID, targetUsername string) error
}

// FollowResponse represents a successful follow or unfollow response
// swagger:model FollowResponse
type FollowResponse struct {
	// Success message
	// default: You are now following 'john_doe'
	Message string `json:"message"`
}

// FollowErrorResponse represents an error response for follow operations
// swagger:model FollowErrorResponse
type FollowErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewFollowHandler returns an HTTP handler that follows a user.
// @Summary Follow a user
// @Description Creates a follow edge from the authenticated user to the target. Following an already-followed user succeeds with no duplicate edge.
// @Tags social
// @Produce json
// @Param username path string true "Target username"
// @Success 200 {object} handlers.FollowResponse "Edge created"
// @Failure 400 {object} handlers.FollowErrorResponse "Cannot follow yourself"
// @Failure 404 {object} handlers.FollowErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{username}/follow [post]
func NewFollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		followerID := middlewares.GetUserIDFromContext(r.Context())

		err := svc.Follow(r.Context(), followerID, username)
		if err != nil {
			writeFollowError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FollowResponse{
			Message: "You are now following '" + username + "'",
		})
	}
}

// NewUnfollowHandler returns an HTTP handler that unfollows a user.
// @Summary Unfollow a user
// @Description Removes the follow edge from the authenticated user to the target. Unfollowing a user that was never followed succeeds.
// @Tags social
// @Produce json
// @Param username path string true "Target username"
// @Success 200 {object} handlers.FollowResponse "Edge removed"
// @Failure 400 {object} handlers.FollowErrorResponse "Cannot unfollow yourself"
// @Failure 404 {object} handlers.FollowErrorResponse "User not found"
// @Security BearerAuth
// @Router /users/{username}/follow [delete]
func NewUnfollowHandler(svc Follower) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		followerID := middlewares.GetUserIDFromContext(r.Context())

		err := svc.Unfollow(r.Context(), followerID, username)
		if err != nil {
			writeFollowError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FollowResponse{
			Message: "You are no longer following '" + username + "'",
		})
	}
}

func writeFollowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(FollowErrorResponse{Error: "User not found"})
	case errors.Is(err, services.ErrSelfFollow):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(FollowErrorResponse{Error: "You cannot follow yourself"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(FollowErrorResponse{Error: "Internal server error"})
	}
}

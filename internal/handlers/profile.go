package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

// Profiler defines the interface that the profile service must implement.
type Profiler interface {
	GetProfile(ctx context.Context, username string) (*models.UserDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, aboutMe string) error
}

// ProfileResponse represents a user's public profile
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Username
	Username string `json:"username"`

	// Short bio, up to 256 characters
	AboutMe string `json:"about_me"`

	// Time of the user's most recent request
	LastSeen time.Time `json:"last_seen"`

	// Registration time
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest represents a profile edit
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// New username
	// required: true
	// example: dj_marmot
	Username string `json:"username"`

	// Short bio, up to 256 characters
	AboutMe string `json:"about_me"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for viewing a user profile.
// @Summary User profile
// @Description Returns the public profile of a user.
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/{username} [get]
func NewGetProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")

		user, err := svc.GetProfile(r.Context(), username)
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "User not found"})
			return
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{
			Username:  user.Username,
			AboutMe:   user.AboutMe,
			LastSeen:  user.LastSeen,
			CreatedAt: user.CreatedAt,
		})
	}
}

// NewUpdateProfileHandler returns an HTTP handler for editing the
// authenticated user's profile.
// @Summary Edit profile
// @Description Updates the authenticated user's username and bio.
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 "Profile updated"
// @Failure 400 {object} handlers.ProfileErrorResponse "Validation error"
// @Failure 409 {object} handlers.ProfileErrorResponse "Username already taken"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /profile [put]
func NewUpdateProfileHandler(svc Profiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "invalid request body"})
			return
		}

		userID := middlewares.GetUserIDFromContext(r.Context())

		err := svc.UpdateProfile(r.Context(), userID, req.Username, req.AboutMe)
		switch {
		case errors.Is(err, services.ErrUsernameRequired):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Username is required"})
			return
		case errors.Is(err, services.ErrAboutMeTooLong):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "About me must not exceed 256 characters"})
			return
		case errors.Is(err, services.ErrUsernameTaken):
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Username already taken"})
			return
		case err != nil:
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

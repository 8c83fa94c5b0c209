package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

// Error variables
var (
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUsernameRequired = errors.New("username is required")
	ErrAboutMeTooLong   = errors.New("about me exceeds 256 characters")
)

// ProfileReader reads user records for profile operations.
type ProfileReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileWriter updates user profiles.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, aboutMe string) error
}

// profileValidators run in order over a candidate profile update before any
// write is attempted.
var profileValidators = []func(username, aboutMe string) error{
	func(username, _ string) error {
		if strings.TrimSpace(username) == "" {
			return ErrUsernameRequired
		}
		return nil
	},
	func(_, aboutMe string) error {
		if len(aboutMe) > 256 {
			return ErrAboutMeTooLong
		}
		return nil
	},
}

// ProfileService serves user pages and profile edits.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// GetProfile returns a user by username.
func (svc *ProfileService) GetProfile(ctx context.Context, username string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile changes the user's username and profile text. Renaming to a
// username held by someone else is rejected; keeping the current name is not
// a rename.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, username, aboutMe string) error {
	for _, validate := range profileValidators {
		if err := validate(username, aboutMe); err != nil {
			return err
		}
	}

	current, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if current == nil {
		return ErrUserNotFound
	}

	if username != current.Username {
		existing, err := svc.reader.GetByUsername(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "username", username, "err", err)
			return err
		}
		if existing != nil {
			return ErrUsernameTaken
		}
	}

	if err := svc.writer.UpdateProfile(ctx, userID, username, aboutMe); err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return err
	}

	return nil
}

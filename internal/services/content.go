package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/zodin-dev/symphony/internal/logger"
	"github.com/zodin-dev/symphony/internal/models"
)

// Error variables
var (
	ErrMediaNotFound      = errors.New("track or video not found")
	ErrDuplicateTitle     = errors.New("title is already being used")
	ErrForbidden          = errors.New("content belongs to another user")
	ErrTitleRequired      = errors.New("title is required")
	ErrBodyRequired       = errors.New("post body is required")
	ErrDescriptionTooLong = errors.New("description exceeds 512 characters")
	ErrInvalidFileType    = errors.New("invalid file type")
)

// Allowed upload extensions per kind.
var (
	audioExtensions = []string{"wav", "mp3", "flac", "ogg"}
	videoExtensions = []string{"mp4", "webm"}
)

// MediaReader reads tracks and videos by natural key.
type MediaReader interface {
	GetByTitle(ctx context.Context, kind models.MediaKind, title string) (*models.MediaDB, error)
}

// MediaWriter defines write operations on tracks and videos.
type MediaWriter interface {
	Save(ctx context.Context, kind models.MediaKind, authorID uuid.UUID, title, description, filename string) (uuid.UUID, bool, error)
	Delete(ctx context.Context, kind models.MediaKind, id uuid.UUID) error
	IncrementPlays(ctx context.Context, kind models.MediaKind, id uuid.UUID) error
}

// PostWriter persists new posts.
type PostWriter interface {
	Save(ctx context.Context, authorID uuid.UUID, body string) (uuid.UUID, error)
}

// ObjectStorage stores the media files backing tracks and videos.
type ObjectStorage interface {
	Put(ctx context.Context, kind models.MediaKind, filename string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, kind models.MediaKind, filename string) (io.ReadCloser, error)
	Remove(ctx context.Context, kind models.MediaKind, filename string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// MediaUpload is a candidate upload going through the validation pipeline.
type MediaUpload struct {
	Kind        models.MediaKind
	Title       string
	Description string
	Filename    string
}

// uploadValidators run in order over a candidate upload, all of them before
// any write is attempted.
var uploadValidators = []func(MediaUpload) error{
	func(u MediaUpload) error {
		if strings.TrimSpace(u.Title) == "" {
			return ErrTitleRequired
		}
		return nil
	},
	func(u MediaUpload) error {
		if len(u.Description) > 512 {
			return ErrDescriptionTooLong
		}
		return nil
	},
	func(u MediaUpload) error {
		allowed := audioExtensions
		if u.Kind == models.MediaVideo {
			allowed = videoExtensions
		}
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Filename), "."))
		for _, a := range allowed {
			if ext == a {
				return nil
			}
		}
		return ErrInvalidFileType
	},
}

// ContentService owns the content lifecycle: posting, uploading, lookup by
// title, playback with engagement counting, and deletion.
type ContentService struct {
	reader      MediaReader
	writer      MediaWriter
	posts       PostWriter
	storage     ObjectStorage
	kafkaWriter KafkaWriter
}

// NewContentService creates a new ContentService. kafkaWriter may be nil.
func NewContentService(reader MediaReader, writer MediaWriter, posts PostWriter, storage ObjectStorage, kafkaWriter KafkaWriter) *ContentService {
	return &ContentService{
		reader:      reader,
		writer:      writer,
		posts:       posts,
		storage:     storage,
		kafkaWriter: kafkaWriter,
	}
}

// CreatePost publishes a text post.
func (svc *ContentService) CreatePost(ctx context.Context, authorID uuid.UUID, body string) (uuid.UUID, error) {
	if strings.TrimSpace(body) == "" {
		return uuid.Nil, ErrBodyRequired
	}

	postID, err := svc.posts.Save(ctx, authorID, body)
	if err != nil {
		logger.Log.Errorw("failed to save post", "author_id", authorID, "err", err)
		return uuid.Nil, err
	}
	return postID, nil
}

// CreateMedia validates an upload, inserts its row and stores its file. The
// row goes first: a duplicate title is caught before any bytes are stored,
// and a failed store rolls the row back with the request transaction.
func (svc *ContentService) CreateMedia(ctx context.Context, kind models.MediaKind, authorID uuid.UUID, title, description, filename string, data io.Reader, size int64, contentType string) (uuid.UUID, error) {
	upload := MediaUpload{Kind: kind, Title: title, Description: description, Filename: filename}
	for _, validate := range uploadValidators {
		if err := validate(upload); err != nil {
			return uuid.Nil, err
		}
	}

	id, inserted, err := svc.writer.Save(ctx, kind, authorID, title, description, filename)
	if err != nil {
		logger.Log.Errorw("failed to save media", "kind", kind, "title", title, "err", err)
		return uuid.Nil, err
	}
	if !inserted {
		return uuid.Nil, ErrDuplicateTitle
	}

	if err := svc.storage.Put(ctx, kind, filename, data, size, contentType); err != nil {
		logger.Log.Errorw("failed to store media file", "kind", kind, "filename", filename, "err", err)
		return uuid.Nil, err
	}

	return id, nil
}

// GetByTitle looks a track or video up by its title.
func (svc *ContentService) GetByTitle(ctx context.Context, kind models.MediaKind, title string) (*models.MediaDB, error) {
	item, err := svc.reader.GetByTitle(ctx, kind, title)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrMediaNotFound
	}
	return item, nil
}

// DeleteMedia removes an item owned by the requester, row first, then the
// backing file.
func (svc *ContentService) DeleteMedia(ctx context.Context, kind models.MediaKind, title string, requesterID uuid.UUID) error {
	item, err := svc.reader.GetByTitle(ctx, kind, title)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrMediaNotFound
	}
	if item.AuthorID != requesterID {
		return ErrForbidden
	}

	if err := svc.writer.Delete(ctx, kind, item.ID); err != nil {
		logger.Log.Errorw("failed to delete media", "kind", kind, "title", title, "err", err)
		return err
	}

	if err := svc.storage.Remove(ctx, kind, item.Filename); err != nil {
		// The row is gone; a stray object is the lesser evil.
		logger.Log.Errorw("failed to remove media file", "kind", kind, "filename", item.Filename, "err", err)
	}

	return nil
}

// Stream opens the backing file for playback. When the viewer is not the
// owner, the play counter is bumped first in a single atomic update and an
// engagement event is published.
func (svc *ContentService) Stream(ctx context.Context, kind models.MediaKind, title string, viewerID uuid.UUID) (io.ReadCloser, *models.MediaDB, error) {
	item, err := svc.reader.GetByTitle(ctx, kind, title)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, ErrMediaNotFound
	}

	if viewerID != item.AuthorID {
		if err := svc.writer.IncrementPlays(ctx, kind, item.ID); err != nil {
			logger.Log.Errorw("failed to increment plays", "kind", kind, "title", title, "err", err)
			return nil, nil, err
		}
		svc.publishEngagement(ctx, kind, item, viewerID)
	}

	rc, err := svc.storage.Get(ctx, kind, item.Filename)
	if err != nil {
		logger.Log.Errorw("failed to open media file", "kind", kind, "filename", item.Filename, "err", err)
		return nil, nil, err
	}

	return rc, item, nil
}

// publishEngagement publishes a play event to Kafka.
func (svc *ContentService) publishEngagement(ctx context.Context, kind models.MediaKind, item *models.MediaDB, viewerID uuid.UUID) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "media_id", item.ID)
		return
	}

	event := models.EngagementEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Kind:      string(kind),
		MediaID:   item.ID.String(),
		Title:     item.Title,
	}
	if viewerID != uuid.Nil {
		event.ViewerID = viewerID.String()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal engagement event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(item.ID.String()),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish engagement event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Engagement event published", "event_id", event.EventID, "media_id", event.MediaID)
	}
}

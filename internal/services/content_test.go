package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

func TestContentService_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	postID := uuid.New()

	posts := services.NewMockPostWriter(ctrl)
	posts.EXPECT().
		Save(gomock.Any(), authorID, "hello world").
		Return(postID, nil)

	svc := services.NewContentService(nil, nil, posts, nil, nil)

	got, err := svc.CreatePost(context.Background(), authorID, "hello world")
	require.NoError(t, err)
	assert.Equal(t, postID, got)
}

func TestContentService_CreatePost_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewContentService(nil, nil, services.NewMockPostWriter(ctrl), nil, nil)

	_, err := svc.CreatePost(context.Background(), uuid.New(), "   ")
	assert.ErrorIs(t, err, services.ErrBodyRequired)
}

func TestContentService_CreateMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	trackID := uuid.New()
	payload := strings.NewReader("riff riff riff")

	tests := []struct {
		name      string
		kind      models.MediaKind
		title     string
		filename  string
		mockSetup func(writer *services.MockMediaWriter, storage *services.MockObjectStorage)
		wantErr   error
	}{
		{
			name:     "success",
			kind:     models.MediaTrack,
			title:    "sunrise",
			filename: "sunrise.mp3",
			mockSetup: func(writer *services.MockMediaWriter, storage *services.MockObjectStorage) {
				writer.EXPECT().
					Save(gomock.Any(), models.MediaTrack, authorID, "sunrise", "desc", "sunrise.mp3").
					Return(trackID, true, nil)
				storage.EXPECT().
					Put(gomock.Any(), models.MediaTrack, "sunrise.mp3", gomock.Any(), int64(14), "audio/mpeg").
					Return(nil)
			},
		},
		{
			name:     "duplicate title stores no bytes",
			kind:     models.MediaTrack,
			title:    "sunrise",
			filename: "sunrise.mp3",
			mockSetup: func(writer *services.MockMediaWriter, _ *services.MockObjectStorage) {
				writer.EXPECT().
					Save(gomock.Any(), models.MediaTrack, authorID, "sunrise", "desc", "sunrise.mp3").
					Return(uuid.Nil, false, nil)
			},
			wantErr: services.ErrDuplicateTitle,
		},
		{
			name:      "missing title fails before any write",
			kind:      models.MediaTrack,
			title:     "  ",
			filename:  "sunrise.mp3",
			mockSetup: func(_ *services.MockMediaWriter, _ *services.MockObjectStorage) {},
			wantErr:   services.ErrTitleRequired,
		},
		{
			name:      "audio extension rejected for video",
			kind:      models.MediaVideo,
			title:     "roadtrip",
			filename:  "roadtrip.mp3",
			mockSetup: func(_ *services.MockMediaWriter, _ *services.MockObjectStorage) {},
			wantErr:   services.ErrInvalidFileType,
		},
		{
			name:      "unknown extension rejected",
			kind:      models.MediaTrack,
			title:     "sunrise",
			filename:  "sunrise.txt",
			mockSetup: func(_ *services.MockMediaWriter, _ *services.MockObjectStorage) {},
			wantErr:   services.ErrInvalidFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := services.NewMockMediaWriter(ctrl)
			storage := services.NewMockObjectStorage(ctrl)
			tt.mockSetup(writer, storage)

			svc := services.NewContentService(nil, writer, nil, storage, nil)

			_, err := svc.CreateMedia(context.Background(), tt.kind, authorID, tt.title, "desc", tt.filename, payload, 14, "audio/mpeg")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_CreateMedia_DescriptionTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewContentService(nil, services.NewMockMediaWriter(ctrl), nil, services.NewMockObjectStorage(ctrl), nil)

	long := strings.Repeat("x", 513)
	_, err := svc.CreateMedia(context.Background(), models.MediaTrack, uuid.New(), "sunrise", long, "sunrise.mp3", strings.NewReader(""), 0, "")
	assert.ErrorIs(t, err, services.ErrDescriptionTooLong)
}

func TestContentService_DeleteMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	item := &models.MediaDB{
		ID:       uuid.New(),
		AuthorID: ownerID,
		Title:    "sunrise",
		Filename: "sunrise.mp3",
	}

	tests := []struct {
		name        string
		requesterID uuid.UUID
		mockSetup   func(reader *services.MockMediaReader, writer *services.MockMediaWriter, storage *services.MockObjectStorage)
		wantErr     error
	}{
		{
			name:        "owner deletes row and file",
			requesterID: ownerID,
			mockSetup: func(reader *services.MockMediaReader, writer *services.MockMediaWriter, storage *services.MockObjectStorage) {
				reader.EXPECT().
					GetByTitle(gomock.Any(), models.MediaTrack, "sunrise").
					Return(item, nil)
				writer.EXPECT().
					Delete(gomock.Any(), models.MediaTrack, item.ID).
					Return(nil)
				storage.EXPECT().
					Remove(gomock.Any(), models.MediaTrack, "sunrise.mp3").
					Return(nil)
			},
		},
		{
			name:        "non-owner is rejected",
			requesterID: uuid.New(),
			mockSetup: func(reader *services.MockMediaReader, _ *services.MockMediaWriter, _ *services.MockObjectStorage) {
				reader.EXPECT().
					GetByTitle(gomock.Any(), models.MediaTrack, "sunrise").
					Return(item, nil)
			},
			wantErr: services.ErrForbidden,
		},
		{
			name:        "missing item",
			requesterID: ownerID,
			mockSetup: func(reader *services.MockMediaReader, _ *services.MockMediaWriter, _ *services.MockObjectStorage) {
				reader.EXPECT().
					GetByTitle(gomock.Any(), models.MediaTrack, "sunrise").
					Return(nil, nil)
			},
			wantErr: services.ErrMediaNotFound,
		},
		{
			name:        "file removal failure is swallowed",
			requesterID: ownerID,
			mockSetup: func(reader *services.MockMediaReader, writer *services.MockMediaWriter, storage *services.MockObjectStorage) {
				reader.EXPECT().
					GetByTitle(gomock.Any(), models.MediaTrack, "sunrise").
					Return(item, nil)
				writer.EXPECT().
					Delete(gomock.Any(), models.MediaTrack, item.ID).
					Return(nil)
				storage.EXPECT().
					Remove(gomock.Any(), models.MediaTrack, "sunrise.mp3").
					Return(errors.New("bucket unavailable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockMediaReader(ctrl)
			writer := services.NewMockMediaWriter(ctrl)
			storage := services.NewMockObjectStorage(ctrl)
			tt.mockSetup(reader, writer, storage)

			svc := services.NewContentService(reader, writer, nil, storage, nil)

			err := svc.DeleteMedia(context.Background(), models.MediaTrack, "sunrise", tt.requesterID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContentService_Stream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	item := &models.MediaDB{
		ID:       uuid.New(),
		AuthorID: ownerID,
		Title:    "sunrise",
		Filename: "sunrise.mp3",
	}

	t.Run("a listener bumps the counter and publishes", func(t *testing.T) {
		viewerID := uuid.New()

		reader := services.NewMockMediaReader(ctrl)
		writer := services.NewMockMediaWriter(ctrl)
		storage := services.NewMockObjectStorage(ctrl)
		kafkaWriter := services.NewMockKafkaWriter(ctrl)

		reader.EXPECT().
			GetByTitle(gomock.Any(), models.MediaTrack, "sunrise").
			Return(item, nil)
		writer.EXPECT().
			IncrementPlays(gomock.Any(), models.MediaTrack, item.ID).
			Return(nil)
		kafkaWriter.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)
		storage.EXPECT().
			Get(gomock.Any(), models.MediaTrack, "sunrise.mp3").
			Return(io.NopCloser(strings.NewReader("riff")), nil)

		svc := services.NewContentService(reader, writer, nil, storage, kafkaWriter)

		rc, got, err := svc.Stream(context.Background(), models.MediaTrack, "sunrise", viewerID)
		require.NoError(t, err)
		defer rc.Close()
		assert.Equal(t, item, got)
	})

	t.Run("the artist does not count as a listener", func(t *testing.T) {
		reader := services.NewMockMediaReader(ctrl)
		writer := services.NewMockMediaWriter(ctrl)
		storage := services.NewMockObjectStorage(ctrl)

		reader.EXPECT().
			GetByTitle(gomock.Any(), models.MediaTrack, "sunrise").
			Return(item, nil)
		storage.EXPECT().
			Get(gomock.Any(), models.MediaTrack, "sunrise.mp3").
			Return(io.NopCloser(strings.NewReader("riff")), nil)

		svc := services.NewContentService(reader, writer, nil, storage, nil)

		rc, _, err := svc.Stream(context.Background(), models.MediaTrack, "sunrise", ownerID)
		require.NoError(t, err)
		rc.Close()
	})

	t.Run("missing title", func(t *testing.T) {
		reader := services.NewMockMediaReader(ctrl)

		reader.EXPECT().
			GetByTitle(gomock.Any(), models.MediaTrack, "missing").
			Return(nil, nil)

		svc := services.NewContentService(reader, nil, nil, nil, nil)

		_, _, err := svc.Stream(context.Background(), models.MediaTrack, "missing", uuid.New())
		assert.ErrorIs(t, err, services.ErrMediaNotFound)
	})
}

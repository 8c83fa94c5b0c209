package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

func newUploadRequest(t *testing.T, target, title, description, filename string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", title))
	require.NoError(t, mw.WriteField("description", description))

	part, err := mw.CreateFormFile("upload", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadMusicHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	trackID := uuid.New()
	payload := []byte("riff riff riff")

	tests := []struct {
		name         string
		title        string
		filename     string
		mockSetup    func(m *MockMediaCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name:     "success",
			title:    "sunrise",
			filename: "sunrise.mp3",
			mockSetup: func(m *MockMediaCreator) {
				m.EXPECT().
					CreateMedia(gomock.Any(), models.MediaTrack, authorID, "sunrise", "a morning jam", "sunrise.mp3", gomock.Any(), int64(len(payload)), gomock.Any()).
					DoAndReturn(func(_ interface{}, _ models.MediaKind, _ uuid.UUID, _, _, _ string, data io.Reader, _ int64, _ string) (uuid.UUID, error) {
						got, err := io.ReadAll(data)
						require.NoError(t, err)
						assert.Equal(t, payload, got)
						return trackID, nil
					})
			},
			expectedCode: 201,
		},
		{
			name:     "duplicate title",
			title:    "sunrise",
			filename: "sunrise.mp3",
			mockSetup: func(m *MockMediaCreator) {
				m.EXPECT().
					CreateMedia(gomock.Any(), models.MediaTrack, authorID, "sunrise", "a morning jam", "sunrise.mp3", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrDuplicateTitle)
			},
			expectedCode: 409,
			expectedErr:  "Title already taken",
		},
		{
			name:     "unsupported file type",
			title:    "sunrise",
			filename: "sunrise.txt",
			mockSetup: func(m *MockMediaCreator) {
				m.EXPECT().
					CreateMedia(gomock.Any(), models.MediaTrack, authorID, "sunrise", "a morning jam", "sunrise.txt", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrInvalidFileType)
			},
			expectedCode: 400,
			expectedErr:  "Unsupported file type",
		},
		{
			name:     "missing title",
			title:    "",
			filename: "sunrise.mp3",
			mockSetup: func(m *MockMediaCreator) {
				m.EXPECT().
					CreateMedia(gomock.Any(), models.MediaTrack, authorID, "", "a morning jam", "sunrise.mp3", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(uuid.Nil, services.ErrTitleRequired)
			},
			expectedCode: 400,
			expectedErr:  "Title is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMediaCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUploadMusicHandler(mockSvc)

			req := newUploadRequest(t, "/upload/music", tt.title, "a morning jam", tt.filename, payload)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), authorID))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 201 {
				var resp UploadResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, trackID, resp.ID)
				assert.Equal(t, tt.title, resp.Title)
				return
			}

			var resp UploadErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedErr, resp.Error)
		})
	}
}

func TestUploadMusicHandler_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "sunrise"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload/music", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), uuid.New()))

	handler := NewUploadMusicHandler(NewMockMediaCreator(ctrl))

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 400, rr.Code)

	var resp UploadErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "upload file is required", resp.Error)
}

func TestUploadVideoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	videoID := uuid.New()

	mockSvc := NewMockMediaCreator(ctrl)
	mockSvc.EXPECT().
		CreateMedia(gomock.Any(), models.MediaVideo, authorID, "roadtrip", "", "roadtrip.mp4", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(videoID, nil)

	handler := NewUploadVideoHandler(mockSvc)

	req := newUploadRequest(t, "/upload/videos", "roadtrip", "", "roadtrip.mp4", []byte("frames"))
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), authorID))

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 201, rr.Code)

	var resp UploadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, videoID, resp.ID)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
)

func TestPostsFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	posts := []models.PostDB{
		{PostID: uuid.New(), AuthorID: userID, Body: "second", CreatedAt: time.Now()},
		{PostID: uuid.New(), AuthorID: userID, Body: "first", CreatedAt: time.Now().Add(-time.Minute)},
	}

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockFeedPager)
		expectedCode int
		expectedNext *int
		expectedPrev *int
		expectedLen  int
	}{
		{
			name:   "first page with next",
			target: "/feed/posts",
			mockSetup: func(m *MockFeedPager) {
				m.EXPECT().
					Posts(gomock.Any(), userID, 1).
					Return(posts, true, false, nil)
			},
			expectedCode: 200,
			expectedNext: intPtr(2),
			expectedLen:  2,
		},
		{
			name:   "middle page",
			target: "/feed/posts?page=2",
			mockSetup: func(m *MockFeedPager) {
				m.EXPECT().
					Posts(gomock.Any(), userID, 2).
					Return(posts, true, true, nil)
			},
			expectedCode: 200,
			expectedNext: intPtr(3),
			expectedPrev: intPtr(1),
			expectedLen:  2,
		},
		{
			name:   "page past the end",
			target: "/feed/posts?page=99",
			mockSetup: func(m *MockFeedPager) {
				m.EXPECT().
					Posts(gomock.Any(), userID, 99).
					Return(nil, false, false, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name:   "malformed page falls back to 1",
			target: "/feed/posts?page=abc",
			mockSetup: func(m *MockFeedPager) {
				m.EXPECT().
					Posts(gomock.Any(), userID, 1).
					Return(posts, false, false, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name:   "internal server error",
			target: "/feed/posts",
			mockSetup: func(m *MockFeedPager) {
				m.EXPECT().
					Posts(gomock.Any(), userID, 1).
					Return(nil, false, false, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFeedPager(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewPostsFeedHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != 200 {
				return
			}

			var resp PostsFeedResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp.Posts, tt.expectedLen)
			assert.Equal(t, tt.expectedNext, resp.NextPage)
			assert.Equal(t, tt.expectedPrev, resp.PrevPage)
		})
	}
}

func TestMusicFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	tracks := []models.MediaDB{
		{ID: uuid.New(), AuthorID: userID, Title: "sunrise", Filename: "sunrise.mp3"},
	}

	mockSvc := NewMockFeedPager(ctrl)
	mockSvc.EXPECT().
		Music(gomock.Any(), userID, 1).
		Return(tracks, false, false, nil)

	handler := NewMusicFeedHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/feed/music", nil)
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp MediaFeedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, "sunrise", resp.Items[0].Title)
	assert.Nil(t, resp.NextPage)
	assert.Nil(t, resp.PrevPage)
}

func TestVideosFeedHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mockSvc := NewMockFeedPager(ctrl)
	mockSvc.EXPECT().
		Videos(gomock.Any(), userID, 3).
		Return(nil, false, true, nil)

	handler := NewVideosFeedHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/feed/videos?page=3", nil)
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))

	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var resp MediaFeedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
	assert.Equal(t, intPtr(2), resp.PrevPage)
}

func intPtr(v int) *int { return &v }

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zodin-dev/symphony/internal/middlewares"
	"github.com/zodin-dev/symphony/internal/models"
	"github.com/zodin-dev/symphony/internal/services"
)

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lastSeen := time.Now().Truncate(time.Second)
	user := &models.UserDB{
		UserID:   uuid.New(),
		Username: "alice",
		AboutMe:  "making noise since 2019",
		LastSeen: lastSeen,
	}

	tests := []struct {
		name         string
		username     string
		mockSetup    func(m *MockProfiler)
		expectedCode int
	}{
		{
			name:     "success",
			username: "alice",
			mockSetup: func(m *MockProfiler) {
				m.EXPECT().
					GetProfile(gomock.Any(), "alice").
					Return(user, nil)
			},
			expectedCode: 200,
		},
		{
			name:     "not found",
			username: "ghost",
			mockSetup: func(m *MockProfiler) {
				m.EXPECT().
					GetProfile(gomock.Any(), "ghost").
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfiler(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGetProfileHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.username, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("username", tt.username)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp ProfileResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "alice", resp.Username)
				assert.Equal(t, "making noise since 2019", resp.AboutMe)
				assert.WithinDuration(t, lastSeen, resp.LastSeen, time.Second)
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		req          UpdateProfileRequest
		mockSetup    func(m *MockProfiler)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			req:  UpdateProfileRequest{Username: "alice", AboutMe: "new bio"},
			mockSetup: func(m *MockProfiler) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, "alice", "new bio").
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name: "username taken",
			req:  UpdateProfileRequest{Username: "bob", AboutMe: ""},
			mockSetup: func(m *MockProfiler) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, "bob", "").
					Return(services.ErrUsernameTaken)
			},
			expectedCode: 409,
			expectedErr:  "Username already taken",
		},
		{
			name: "username required",
			req:  UpdateProfileRequest{Username: "", AboutMe: ""},
			mockSetup: func(m *MockProfiler) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), userID, "", "").
					Return(services.ErrUsernameRequired)
			},
			expectedCode: 400,
			expectedErr:  "Username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfiler(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewUpdateProfileHandler(mockSvc)

			bodyBytes, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(bodyBytes))
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ProfileErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			}
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/huangweilong/personal-website-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockMediaService is a mock implementation of MediaService
type mockMediaService struct {
	entries  []models.MediaEntry
	entry    *models.MediaEntry
	err      error
	lastKind models.MediaKind
	lastID   string
}

func (m *mockMediaService) List(ctx context.Context, kind models.MediaKind) ([]models.MediaEntry, error) {
	m.lastKind = kind
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockMediaService) GetByID(ctx context.Context, kind models.MediaKind, id string) (*models.MediaEntry, error) {
	m.lastKind = kind
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return m.entry, nil
}

func newMediaTestRouter(svc MediaService) chi.Router {
	logger, _ := zap.NewDevelopment()
	r := chi.NewRouter()
	NewMediaHandler(svc, logger).RegisterRoutes(r)
	return r
}

func TestMediaHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSvc        *mockMediaService
		expectedStatus int
		expectedKind   models.MediaKind
		expectedLen    int
		expectedError  string
	}{
		{
			name: "podcasts success",
			path: "/api/podcasts",
			mockSvc: &mockMediaService{
				entries: []models.MediaEntry{{Title: "a"}, {Title: "b"}},
			},
			expectedStatus: http.StatusOK,
			expectedKind:   models.MediaKindPodcast,
			expectedLen:    2,
		},
		{
			name: "videos success",
			path: "/api/videos",
			mockSvc: &mockMediaService{
				entries: []models.MediaEntry{{Title: "v"}},
			},
			expectedStatus: http.StatusOK,
			expectedKind:   models.MediaKindVideo,
			expectedLen:    1,
		},
		{
			name: "empty collection returns empty array",
			path: "/api/podcasts",
			mockSvc: &mockMediaService{
				entries: []models.MediaEntry{},
			},
			expectedStatus: http.StatusOK,
			expectedKind:   models.MediaKindPodcast,
			expectedLen:    0,
		},
		{
			name:           "store unavailable",
			path:           "/api/podcasts",
			mockSvc:        &mockMediaService{err: models.ErrStoreUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
			expectedKind:   models.MediaKindPodcast,
			expectedError:  "Database not connected",
		},
		{
			name:           "query error",
			path:           "/api/videos",
			mockSvc:        &mockMediaService{err: errors.New("cursor timeout")},
			expectedStatus: http.StatusInternalServerError,
			expectedKind:   models.MediaKindVideo,
			expectedError:  "Failed to fetch videos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMediaTestRouter(tt.mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedKind, tt.mockSvc.lastKind)

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}

			var entries []models.MediaEntry
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
			assert.Len(t, entries, tt.expectedLen)
		})
	}
}

func TestMediaHandler_GetByID(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSvc        *mockMediaService
		expectedStatus int
		expectedID     string
		expectedError  string
	}{
		{
			name: "podcast found",
			path: "/api/podcasts/64f1b2c3d4e5f6a7b8c9d0e1",
			mockSvc: &mockMediaService{
				entry: &models.MediaEntry{Title: "episode"},
			},
			expectedStatus: http.StatusOK,
			expectedID:     "64f1b2c3d4e5f6a7b8c9d0e1",
		},
		{
			name: "legacy id passed through unchanged",
			path: "/api/videos/intro-video",
			mockSvc: &mockMediaService{
				entry: &models.MediaEntry{Title: "intro"},
			},
			expectedStatus: http.StatusOK,
			expectedID:     "intro-video",
		},
		{
			name:           "podcast not found",
			path:           "/api/podcasts/000000000000000000000000",
			mockSvc:        &mockMediaService{err: models.ErrNotFound},
			expectedStatus: http.StatusNotFound,
			expectedID:     "000000000000000000000000",
			expectedError:  "Podcast not found",
		},
		{
			name:           "video not found",
			path:           "/api/videos/000000000000000000000000",
			mockSvc:        &mockMediaService{err: models.ErrNotFound},
			expectedStatus: http.StatusNotFound,
			expectedID:     "000000000000000000000000",
			expectedError:  "Video not found",
		},
		{
			name:           "store unavailable",
			path:           "/api/videos/abc",
			mockSvc:        &mockMediaService{err: models.ErrStoreUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
			expectedID:     "abc",
			expectedError:  "Database not connected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMediaTestRouter(tt.mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedID, tt.mockSvc.lastID)

			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/huangweilong/personal-website-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockMessageService is a mock implementation of MessageService
type mockMessageService struct {
	submitID   string
	submitErr  error
	list       *models.MessageList
	listErr    error
	msg        *models.ContactMessage
	getErr     error
	markErr    error
	lastOpts   models.MessageListOptions
	lastID     string
	lastRead   bool
	lastName   string
	lastEmail  string
	lastBody   string
	markCalled bool
}

func (m *mockMessageService) Submit(ctx context.Context, name, email, message string) (string, error) {
	m.lastName, m.lastEmail, m.lastBody = name, email, message
	if m.submitErr != nil {
		return "", m.submitErr
	}
	return m.submitID, nil
}

func (m *mockMessageService) List(ctx context.Context, opts models.MessageListOptions) (*models.MessageList, error) {
	m.lastOpts = opts
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.list, nil
}

func (m *mockMessageService) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	m.lastID = id
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.msg, nil
}

func (m *mockMessageService) MarkRead(ctx context.Context, id string, read bool) error {
	m.lastID, m.lastRead, m.markCalled = id, read, true
	return m.markErr
}

func newMessageTestRouter(svc MessageService) chi.Router {
	logger, _ := zap.NewDevelopment()
	r := chi.NewRouter()
	NewMessageHandler(svc, logger).RegisterRoutes(r)
	return r
}

func TestMessageHandler_Submit(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		mockSvc         *mockMessageService
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:           "valid submission",
			body:           `{"name":"Ann","email":"ann@example.com","message":"hello"}`,
			mockSvc:        &mockMessageService{submitID: "64f1b2c3d4e5f6a7b8c9d0e1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing field",
			body: `{"name":"","email":"a@b.com","message":"hi"}`,
			mockSvc: &mockMessageService{
				submitErr: models.NewValidationError("name, email, and message are required fields"),
			},
			expectedStatus:  http.StatusBadRequest,
			expectedError:   "Validation error",
			expectedMessage: "name, email, and message are required fields",
		},
		{
			name: "malformed email has its own message",
			body: `{"name":"Ann","email":"not-an-email","message":"hi"}`,
			mockSvc: &mockMessageService{
				submitErr: models.NewValidationError("invalid email format"),
			},
			expectedStatus:  http.StatusBadRequest,
			expectedError:   "Validation error",
			expectedMessage: "invalid email format",
		},
		{
			name:           "invalid JSON body",
			body:           `{not json`,
			mockSvc:        &mockMessageService{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation error",
		},
		{
			name:           "store unavailable",
			body:           `{"name":"Ann","email":"ann@example.com","message":"hello"}`,
			mockSvc:        &mockMessageService{submitErr: models.ErrStoreUnavailable},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "Database not connected",
		},
		{
			name:           "insert failure",
			body:           `{"name":"Ann","email":"ann@example.com","message":"hello"}`,
			mockSvc:        &mockMessageService{submitErr: errors.New("write concern error")},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Failed to submit message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMessageTestRouter(tt.mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusCreated {
				var resp contactResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.mockSvc.submitID, resp.ID)
				assert.Equal(t, "Your message has been sent successfully!", resp.Message)
				return
			}

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedError, body["error"])
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}
}

func TestMessageHandler_List_QueryParams(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedRead  *bool
		expectedLimit int64
		expectedSkip  int64
	}{
		{
			name:          "defaults",
			query:         "",
			expectedLimit: 50,
			expectedSkip:  0,
		},
		{
			name:          "read=true filter",
			query:         "?read=true",
			expectedRead:  boolPtr(true),
			expectedLimit: 50,
			expectedSkip:  0,
		},
		{
			name:          "read=false filter",
			query:         "?read=false",
			expectedRead:  boolPtr(false),
			expectedLimit: 50,
			expectedSkip:  0,
		},
		{
			name:          "explicit pagination",
			query:         "?limit=10&skip=30",
			expectedLimit: 10,
			expectedSkip:  30,
		},
		{
			name:          "non-numeric values fall back to defaults",
			query:         "?limit=lots&skip=some",
			expectedLimit: 50,
			expectedSkip:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &mockMessageService{
				list: &models.MessageList{Messages: []models.ContactMessage{}},
			}
			router := newMessageTestRouter(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/messages"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedLimit, mockSvc.lastOpts.Limit)
			assert.Equal(t, tt.expectedSkip, mockSvc.lastOpts.Skip)
			if tt.expectedRead == nil {
				assert.Nil(t, mockSvc.lastOpts.Read)
			} else {
				require.NotNil(t, mockSvc.lastOpts.Read)
				assert.Equal(t, *tt.expectedRead, *mockSvc.lastOpts.Read)
			}
		})
	}
}

func TestMessageHandler_List_Unavailable(t *testing.T) {
	router := newMessageTestRouter(&mockMessageService{listErr: models.ErrStoreUnavailable})

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMessageHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockSvc := &mockMessageService{msg: &models.ContactMessage{Name: "Ann"}}
		router := newMessageTestRouter(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/messages/64f1b2c3d4e5f6a7b8c9d0e1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "64f1b2c3d4e5f6a7b8c9d0e1", mockSvc.lastID)
	})

	t.Run("not found", func(t *testing.T) {
		router := newMessageTestRouter(&mockMessageService{getErr: models.ErrNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/messages/000000000000000000000000", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Message not found", body["error"])
	})
}

func TestMessageHandler_MarkRead(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSvc        *mockMessageService
		expectedStatus int
		expectedRead   bool
		expectedMsg    string
	}{
		{
			name:           "explicit read true",
			body:           `{"read":true}`,
			mockSvc:        &mockMessageService{},
			expectedStatus: http.StatusOK,
			expectedRead:   true,
			expectedMsg:    "Message marked as read",
		},
		{
			name:           "explicit read false",
			body:           `{"read":false}`,
			mockSvc:        &mockMessageService{},
			expectedStatus: http.StatusOK,
			expectedRead:   false,
			expectedMsg:    "Message marked as unread",
		},
		{
			name:           "empty body defaults to read",
			body:           "",
			mockSvc:        &mockMessageService{},
			expectedStatus: http.StatusOK,
			expectedRead:   true,
			expectedMsg:    "Message marked as read",
		},
		{
			name:           "empty object defaults to read",
			body:           `{}`,
			mockSvc:        &mockMessageService{},
			expectedStatus: http.StatusOK,
			expectedRead:   true,
			expectedMsg:    "Message marked as read",
		},
		{
			name:           "not found",
			body:           `{"read":true}`,
			mockSvc:        &mockMessageService{markErr: models.ErrNotFound},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMessageTestRouter(tt.mockSvc)

			req := httptest.NewRequest(http.MethodPut, "/api/messages/abc123/read", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.True(t, tt.mockSvc.markCalled)
			assert.Equal(t, "abc123", tt.mockSvc.lastID)

			if tt.expectedStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tt.expectedRead, tt.mockSvc.lastRead)

			var resp markReadResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.True(t, resp.Success)
			assert.Equal(t, tt.expectedMsg, resp.Message)
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}

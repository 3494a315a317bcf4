package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/huangweilong/personal-website-backend/internal/models"
	"go.uber.org/zap"
)

// MessageService is the interface that wraps methods for contact intake business logic.
type MessageService interface {
	// Submit validates and stores a contact submission, returning the
	// assigned identifier. Validation failures are *models.ValidationError.
	Submit(ctx context.Context, name, email, message string) (string, error)
	// List returns a page of messages sorted by createdAt descending plus
	// the total count matching the filter ignoring pagination.
	List(ctx context.Context, opts models.MessageListOptions) (*models.MessageList, error)
	// GetByID retrieves a single message. Returns models.ErrNotFound when no
	// document matches.
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	// MarkRead sets the read flag. Idempotent; returns models.ErrNotFound
	// when no document matches.
	MarkRead(ctx context.Context, id string, read bool) error
}

// MessageHandler handles HTTP requests for contact submissions
type MessageHandler struct {
	BaseHandler
	service MessageService
}

// NewMessageHandler creates a new contact intake handler
func NewMessageHandler(svc MessageService, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all contact intake routes
func (h *MessageHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/contact", h.Submit)
	r.Get("/api/messages", h.List)
	r.Get("/api/messages/{id}", h.GetByID)
	r.Put("/api/messages/{id}/read", h.MarkRead)
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type markReadRequest struct {
	Read *bool `json:"read"`
}

type markReadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact
// @Summary Submit a contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body contactRequest true "Contact submission"
// @Success 201 {object} contactResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/contact [post]
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation error", "invalid request body")
		return
	}

	id, err := h.service.Submit(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.respondServiceError(w, err, "", "Failed to submit message")
		return
	}

	h.respondJSON(w, http.StatusCreated, contactResponse{
		Success: true,
		Message: "Your message has been sent successfully!",
		ID:      id,
	})
}

// List handles GET /api/messages
// @Summary List contact messages
// @Description Page of messages, newest first, with the total count matching the filter
// @Tags contact
// @Produce json
// @Param read query bool false "Filter by read flag"
// @Param limit query int false "Page size (default 50)"
// @Param skip query int false "Documents to skip (default 0)"
// @Success 200 {object} models.MessageList
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	opts := models.MessageListOptions{
		Limit: 50,
		Skip:  0,
	}

	query := r.URL.Query()
	if readParam := query.Get("read"); readParam != "" {
		read := readParam == "true"
		opts.Read = &read
	}
	if limitParam := query.Get("limit"); limitParam != "" {
		if limit, err := strconv.ParseInt(limitParam, 10, 64); err == nil {
			opts.Limit = limit
		}
	}
	if skipParam := query.Get("skip"); skipParam != "" {
		if skip, err := strconv.ParseInt(skipParam, 10, 64); err == nil {
			opts.Skip = skip
		}
	}

	list, err := h.service.List(r.Context(), opts)
	if err != nil {
		h.respondServiceError(w, err, "", "Failed to fetch messages")
		return
	}

	h.respondJSON(w, http.StatusOK, list)
}

// GetByID handles GET /api/messages/{id}
// @Summary Get message by ID
// @Tags contact
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} models.ContactMessage
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/messages/{id} [get]
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err, "Message not found", "Failed to fetch message")
		return
	}

	h.respondJSON(w, http.StatusOK, msg)
}

// MarkRead handles PUT /api/messages/{id}/read
// @Summary Mark a message read or unread
// @Description Sets the read flag; body {"read": bool}, default true when absent
// @Tags contact
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param request body markReadRequest false "Read flag"
// @Success 200 {object} markReadResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /api/messages/{id}/read [put]
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Absent body or absent field defaults to read=true
	read := true
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(w, http.StatusBadRequest, "Validation error", "invalid request body")
		return
	}
	if req.Read != nil {
		read = *req.Read
	}

	if err := h.service.MarkRead(r.Context(), id, read); err != nil {
		h.respondServiceError(w, err, "Message not found", "Failed to update message")
		return
	}

	state := "read"
	if !read {
		state = "unread"
	}
	h.respondJSON(w, http.StatusOK, markReadResponse{
		Success: true,
		Message: "Message marked as " + state,
	})
}
